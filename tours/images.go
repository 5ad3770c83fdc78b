package tours

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
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

// POST /api/admin/tours/:id/images
func AddTourImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	var tour models.TourPackage
	if err := db.ToursCollection.FindOne(ctx, bson.M{"tourid": id}).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	images := schema.AddImage(tour.Images, body.URL, body.Alt, body.IsMain)
	_, err := db.ToursCollection.UpdateOne(ctx, bson.M{"tourid": id}, bson.M{
		"$set": bson.M{"images": images, "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add image")
		return
	}

	go mq.Emit(ctx, "tour-updated", mq.Event{EntityType: "tour", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "images": images})
}

// DELETE /api/admin/tours/:id/images?url=
func RemoveTourImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	url := r.URL.Query().Get("url")
	if url == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image url is required")
		return
	}

	var tour models.TourPackage
	if err := db.ToursCollection.FindOne(ctx, bson.M{"tourid": id}).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	// Removing a URL that is not in the list is a no-op, not an error.
	images := schema.RemoveImage(tour.Images, url)
	_, err := db.ToursCollection.UpdateOne(ctx, bson.M{"tourid": id}, bson.M{
		"$set": bson.M{"images": images, "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove image")
		return
	}

	if err := filemgr.DeleteImage(url); err != nil {
		log.Println("Error deleting image:", err)
	}

	go mq.Emit(ctx, "tour-updated", mq.Event{EntityType: "tour", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "images": images})
}

// POST /api/tours/tour/:slug/rating: ratings come from the public detail
// page, so the lookup is by slug and only published tours accept one.
func UpdateTourRating(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	var tour models.TourPackage
	filter := bson.M{"slug": slug, "status": models.StatusPublished}
	if err := db.ToursCollection.FindOne(ctx, filter).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	rating := schema.UpdateRating(tour.Rating, body.Rating)
	_, err := db.ToursCollection.UpdateOne(ctx, bson.M{"tourid": tour.TourID}, bson.M{
		"$set": bson.M{"rating": rating},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update rating")
		return
	}

	go mq.Emit(ctx, "tour-updated", mq.Event{EntityType: "tour", Method: "PUT", EntityID: tour.TourID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "rating": rating})
}

// PATCH /api/admin/tours/:id/status
func SetTourStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	res, err := db.ToursCollection.UpdateOne(ctx, bson.M{"tourid": id}, bson.M{
		"$set": bson.M{"status": body.Status, "updatedBy": actorID(r), "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	go mq.Emit(ctx, "tour-updated", mq.Event{EntityType: "tour", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "status": body.Status})
}

// PATCH /api/admin/tours/:id/featured
func ToggleTourFeatured(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var tour models.TourPackage
	if err := db.ToursCollection.FindOne(ctx, bson.M{"tourid": id}).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	_, err := db.ToursCollection.UpdateOne(ctx, bson.M{"tourid": id}, bson.M{
		"$set": bson.M{"featured": !tour.Featured, "updatedBy": actorID(r), "updatedAt": time.Now()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to toggle featured")
		return
	}

	go mq.Emit(ctx, "tour-updated", mq.Event{EntityType: "tour", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "featured": !tour.Featured})
}
