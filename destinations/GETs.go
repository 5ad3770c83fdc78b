package destinations

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"planetholiday/db"
	"planetholiday/models"
	"planetholiday/rdx"
	"planetholiday/utils"
)

var listProjection = bson.M{
	"destinationid": 1, "name": 1, "slug": 1, "shortDescription": 1,
	"images": 1, "category": 1, "rating": 1, "location": 1,
}

var catalogSort = bson.D{{Key: "rating.average", Value: -1}, {Key: "createdAt", Value: -1}}

func findPublished(ctx context.Context, filter bson.M, limit int64) ([]models.Destination, error) {
	filter["status"] = models.StatusPublished
	opts := options.Find().SetSort(catalogSort).SetLimit(limit).SetProjection(listProjection)
	return utils.FindAndDecode[models.Destination](ctx, db.DestinationsCollection, filter, opts)
}

// GET /api/destinations/featured
func GetFeaturedDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := utils.ParseLimit(r, 6, 50)

	if cached, _ := rdx.RdxGet("destination:featured"); cached != "" && limit == 6 {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	dests, err := findPublished(ctx, bson.M{"featured": true}, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}

	if limit == 6 {
		if data, err := json.Marshal(dests); err == nil {
			rdx.RdxSet("destination:featured", string(data))
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dests)
}

// GET /api/destinations/category/:category
func GetDestinationsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dests, err := findPublished(ctx, bson.M{"category": ps.ByName("category")}, utils.ParseLimit(r, 12, 50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dests)
}

// GET /api/destinations/region/:region
func GetDestinationsByRegion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dests, err := findPublished(ctx, bson.M{"location.region": ps.ByName("region")}, utils.ParseLimit(r, 12, 50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dests)
}

// GET /api/destinations/search?q=
func SearchDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	if query == "" {
		utils.RespondWithJSON(w, http.StatusOK, []models.Destination{})
		return
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"description": pattern},
		{"location.city": pattern},
		{"location.region": pattern},
	}}

	dests, err := findPublished(ctx, filter, utils.ParseLimit(r, 20, 50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dests)
}

// GET /api/destinations/nearby?lat=&lng=&radius=: radius in kilometers,
// converted to meters for the $near query; nearest first.
func GetNearbyDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	radiusKm, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil || radiusKm <= 0 {
		radiusKm = 50
	}

	filter := bson.M{
		"status": models.StatusPublished,
		"geo": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": radiusKm * 1000,
			},
		},
	}

	// $near already sorts nearest first; no extra sort allowed.
	opts := options.Find().SetLimit(utils.ParseLimit(r, 10, 50)).SetProjection(listProjection)
	dests, err := utils.FindAndDecode[models.Destination](ctx, db.DestinationsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch nearby destinations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dests)
}

// GET /api/destinations/destination/:slug
func GetDestinationBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var dest models.Destination
	err := db.DestinationsCollection.FindOne(ctx, bson.M{
		"slug":   ps.ByName("slug"),
		"status": models.StatusPublished,
	}).Decode(&dest)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dest)
}

// GET /api/admin/destinations
func ListDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := bson.M{}
	if s := q.Get("status"); s != "" {
		filter["status"] = s
	}
	if c := q.Get("category"); c != "" {
		filter["category"] = c
	}
	if region := q.Get("region"); region != "" {
		filter["location.region"] = region
	}
	if f := q.Get("featured"); f != "" {
		filter["featured"] = f == "true"
	}
	if search := q.Get("search"); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"description": pattern},
			{"location.city": pattern},
			{"location.region": pattern},
		}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	dests, err := utils.FindAndDecode[models.Destination](ctx, db.DestinationsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}

	total, err := db.DestinationsCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count destinations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"destinations": dests,
		"total":        total,
	})
}
