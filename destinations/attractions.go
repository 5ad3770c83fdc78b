package destinations

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"planetholiday/db"
	"planetholiday/filemgr"
	"planetholiday/models"
	"planetholiday/mq"
	"planetholiday/schema"
	"planetholiday/utils"
)

// POST /api/admin/destinations/:id/attractions
func AddAttraction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var attraction models.Attraction
	if err := json.NewDecoder(r.Body).Decode(&attraction); err != nil || strings.TrimSpace(attraction.Name) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Attraction name is required")
		return
	}

	res, err := db.DestinationsCollection.UpdateOne(ctx, bson.M{"destinationid": id}, bson.M{
		"$push": bson.M{"attractions": attraction},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add attraction")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "attraction": attraction})
}

// DELETE /api/admin/destinations/:id/attractions/:name: removal is by
// name match; an absent name is a no-op.
func RemoveAttraction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	name := ps.ByName("name")

	res, err := db.DestinationsCollection.UpdateOne(ctx, bson.M{"destinationid": id}, bson.M{
		"$pull": bson.M{"attractions": bson.M{"name": name}},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove attraction")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

// POST /api/admin/destinations/:id/images
func AddDestinationImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var body struct {
		URL    string `json:"url"`
		Alt    string `json:"alt"`
		IsMain bool   `json:"isMain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image url is required")
		return
	}

	var dest models.Destination
	if err := db.DestinationsCollection.FindOne(ctx, bson.M{"destinationid": id}).Decode(&dest); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	images := schema.AddImage(dest.Images, body.URL, body.Alt, body.IsMain)
	_, err := db.DestinationsCollection.UpdateOne(ctx, bson.M{"destinationid": id}, bson.M{
		"$set": bson.M{"images": images, "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add image")
		return
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "images": images})
}

// DELETE /api/admin/destinations/:id/images?url=
func RemoveDestinationImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	url := r.URL.Query().Get("url")
	if url == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image url is required")
		return
	}

	var dest models.Destination
	if err := db.DestinationsCollection.FindOne(ctx, bson.M{"destinationid": id}).Decode(&dest); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	images := schema.RemoveImage(dest.Images, url)
	_, err := db.DestinationsCollection.UpdateOne(ctx, bson.M{"destinationid": id}, bson.M{
		"$set": bson.M{"images": images, "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove image")
		return
	}

	if err := filemgr.DeleteImage(url); err != nil {
		log.Println("Error deleting image:", err)
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "images": images})
}

// POST /api/destinations/destination/:slug/rating: ratings come from the
// public detail page, so the lookup is by slug and only published
// destinations accept one.
func UpdateDestinationRating(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	slug := ps.ByName("slug")

	var body struct {
		Rating float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Rating < 0 || body.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 0 and 5")
		return
	}

	var dest models.Destination
	filter := bson.M{"slug": slug, "status": models.StatusPublished}
	if err := db.DestinationsCollection.FindOne(ctx, filter).Decode(&dest); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	rating := schema.UpdateRating(dest.Rating, body.Rating)
	_, err := db.DestinationsCollection.UpdateOne(ctx, bson.M{"destinationid": dest.DestinationID}, bson.M{
		"$set": bson.M{"rating": rating},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update rating")
		return
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: dest.DestinationID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "rating": rating})
}

// PATCH /api/admin/destinations/:id/status
func SetDestinationStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !utils.ContainsString(models.Statuses, body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	res, err := db.DestinationsCollection.UpdateOne(ctx, bson.M{"destinationid": id}, bson.M{
		"$set": bson.M{"status": body.Status, "updatedBy": actorID(r), "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "status": body.Status})
}

// PATCH /api/admin/destinations/:id/featured
func ToggleDestinationFeatured(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var dest models.Destination
	if err := db.DestinationsCollection.FindOne(ctx, bson.M{"destinationid": id}).Decode(&dest); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	_, err := db.DestinationsCollection.UpdateOne(ctx, bson.M{"destinationid": id}, bson.M{
		"$set": bson.M{"featured": !dest.Featured, "updatedBy": actorID(r), "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to toggle featured")
		return
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "featured": !dest.Featured})
}
