package destinations

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"planetholiday/db"
	"planetholiday/filemgr"
	"planetholiday/globals"
	"planetholiday/models"
	"planetholiday/mq"
	"planetholiday/schema"
	"planetholiday/utils"
)

func actorID(r *http.Request) string {
	id, _ := r.Context().Value(globals.UserIDKey).(string)
	return id
}

func respondValidation(w http.ResponseWriter, verr *models.ValidationError) {
	utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
		"error":  "Validation failed",
		"fields": verr.Fields,
	})
}

// POST /api/admin/destinations
func CreateDestination(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var dest models.Destination
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dest); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	schema.ApplyDestinationDefaults(&dest)
	if dest.Slug == "" {
		dest.Slug = schema.DeriveSlug(dest.Name)
	}
	if verr := schema.ValidateDestination(&dest); verr != nil {
		respondValidation(w, verr)
		return
	}

	now := time.Now()
	dest.DestinationID = utils.GetUUID()
	dest.Geo = models.NewGeoPoint(dest.Location.Coordinates.Lat, dest.Location.Coordinates.Lng)
	dest.CreatedBy = actorID(r)
	dest.CreatedAt = now
	dest.UpdatedAt = now

	if _, err := db.DestinationsCollection.InsertOne(ctx, dest); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "A destination with this slug already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create destination")
		return
	}

	go mq.Emit(ctx, "destination-created", mq.Event{EntityType: "destination", Method: "POST", EntityID: dest.DestinationID})
	utils.RespondWithJSON(w, http.StatusCreated, dest)
}

func applyDestinationPatch(d *models.Destination, p *models.DestinationPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	// A slug can only be cleared; clearing makes the update path derive a
	// fresh one from the name. Replacement values are ignored.
	if p.Slug != nil && *p.Slug == "" {
		d.Slug = ""
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.ShortDescription != nil {
		d.ShortDescription = *p.ShortDescription
	}
	if p.Location != nil {
		d.Location = *p.Location
		if d.Location.Country == "" {
			d.Location.Country = "Sri Lanka"
		}
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Highlights != nil {
		d.Highlights = *p.Highlights
	}
	if p.Attractions != nil {
		d.Attractions = *p.Attractions
	}
	if p.BestTimeToVisit != nil {
		d.BestTimeToVisit = *p.BestTimeToVisit
	}
	if p.Weather != nil {
		d.Weather = *p.Weather
	}
	if p.Activities != nil {
		d.Activities = *p.Activities
	}
	if p.Accommodation != nil {
		d.Accommodation = *p.Accommodation
	}
	if p.Transportation != nil {
		d.Transportation = *p.Transportation
	}
	if p.Tips != nil {
		d.Tips = *p.Tips
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Featured != nil {
		d.Featured = *p.Featured
	}
	if p.Meta != nil {
		d.Meta = *p.Meta
	}
}

// PUT /api/admin/destinations/:id
func UpdateDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var patch models.DestinationPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if verr := schema.ValidateDestinationPatch(&patch); verr != nil {
		respondValidation(w, verr)
		return
	}

	var dest models.Destination
	if err := db.DestinationsCollection.FindOne(ctx, bson.M{"destinationid": id}).Decode(&dest); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	applyDestinationPatch(&dest, &patch)
	if dest.Slug == "" {
		dest.Slug = schema.DeriveSlug(dest.Name)
	}
	// Keep the GeoJSON mirror in sync with the display coordinates.
	dest.Geo = models.NewGeoPoint(dest.Location.Coordinates.Lat, dest.Location.Coordinates.Lng)
	dest.UpdatedBy = actorID(r)
	dest.UpdatedAt = time.Now()

	if _, err := db.DestinationsCollection.ReplaceOne(ctx, bson.M{"destinationid": id}, dest); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "A destination with this slug already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update destination")
		return
	}

	go mq.Emit(ctx, "destination-updated", mq.Event{EntityType: "destination", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, dest)
}

// DELETE /api/admin/destinations/:id
func DeleteDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var dest models.Destination
	if err := db.DestinationsCollection.FindOne(ctx, bson.M{"destinationid": id}).Decode(&dest); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}

	filemgr.CleanupImages(dest.Images)

	if _, err := db.DestinationsCollection.DeleteOne(ctx, bson.M{"destinationid": id}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete destination")
		return
	}

	go mq.Emit(ctx, "destination-deleted", mq.Event{EntityType: "destination", Method: "DELETE", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "message": "Destination deleted successfully"})
}
