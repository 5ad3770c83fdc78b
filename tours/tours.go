package tours

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

// POST /api/admin/tours
func CreateTour(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var tour models.TourPackage
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	schema.ApplyTourDefaults(&tour)
	if tour.Slug == "" {
		tour.Slug = schema.DeriveSlug(tour.Title)
	}
	if verr := schema.ValidateTour(&tour); verr != nil {
		respondValidation(w, verr)
		return
	}

	now := time.Now()
	tour.TourID = utils.GetUUID()
	tour.CreatedBy = actorID(r)
	tour.CreatedAt = now
	tour.UpdatedAt = now

	if _, err := db.ToursCollection.InsertOne(ctx, tour); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "A tour with this slug already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create tour")
		return
	}

	go mq.Emit(ctx, "tour-created", mq.Event{EntityType: "tour", Method: "POST", EntityID: tour.TourID})

	tour.DiscountPercentage = schema.DiscountPercentage(tour.Price, tour.OriginalPrice)
	tour.PricePerDay = schema.PricePerDay(tour.Price, tour.Duration)
	utils.RespondWithJSON(w, http.StatusCreated, tour)
}

// applyTourPatch merges only the keys present in the patch; unspecified
// keys keep their prior value.
func applyTourPatch(t *models.TourPackage, p *models.TourPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	// A slug can only be cleared; clearing makes the update path derive a
	// fresh one from the title. Replacement values are ignored.
	if p.Slug != nil && *p.Slug == "" {
		t.Slug = ""
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ShortDescription != nil {
		t.ShortDescription = *p.ShortDescription
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		t.OriginalPrice = *p.OriginalPrice
	}
	if p.Highlights != nil {
		t.Highlights = *p.Highlights
	}
	if p.Itinerary != nil {
		t.Itinerary = *p.Itinerary
	}
	if p.Included != nil {
		t.Included = *p.Included
	}
	if p.Excluded != nil {
		t.Excluded = *p.Excluded
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Difficulty != nil {
		t.Difficulty = *p.Difficulty
	}
	if p.MaxGroupSize != nil {
		t.MaxGroupSize = *p.MaxGroupSize
	}
	if p.MinAge != nil {
		t.MinAge = *p.MinAge
	}
	if p.Locations != nil {
		t.Locations = *p.Locations
	}
	if p.Seasonality != nil {
		t.Seasonality = *p.Seasonality
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Featured != nil {
		t.Featured = *p.Featured
	}
	if p.Meta != nil {
		t.Meta = *p.Meta
	}
}

// PUT /api/admin/tours/:id
func UpdateTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var patch models.TourPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if verr := schema.ValidateTourPatch(&patch); verr != nil {
		respondValidation(w, verr)
		return
	}

	var tour models.TourPackage
	if err := db.ToursCollection.FindOne(ctx, bson.M{"tourid": id}).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	applyTourPatch(&tour, &patch)
	// A cleared slug re-derives from the (possibly updated) title.
	if tour.Slug == "" {
		tour.Slug = schema.DeriveSlug(tour.Title)
	}
	tour.UpdatedBy = actorID(r)
	tour.UpdatedAt = time.Now()

	if _, err := db.ToursCollection.ReplaceOne(ctx, bson.M{"tourid": id}, tour); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "A tour with this slug already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update tour")
		return
	}

	go mq.Emit(ctx, "tour-updated", mq.Event{EntityType: "tour", Method: "PUT", EntityID: id})

	tour.DiscountPercentage = schema.DiscountPercentage(tour.Price, tour.OriginalPrice)
	tour.PricePerDay = schema.PricePerDay(tour.Price, tour.Duration)
	utils.RespondWithJSON(w, http.StatusOK, tour)
}

// DELETE /api/admin/tours/:id
func DeleteTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var tour models.TourPackage
	if err := db.ToursCollection.FindOne(ctx, bson.M{"tourid": id}).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	// Image cleanup is best-effort; the entity delete proceeds regardless.
	filemgr.CleanupImages(tour.Images)

	if _, err := db.ToursCollection.DeleteOne(ctx, bson.M{"tourid": id}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete tour")
		return
	}

	go mq.Emit(ctx, "tour-deleted", mq.Event{EntityType: "tour", Method: "DELETE", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "message": "Tour package deleted successfully"})
}
