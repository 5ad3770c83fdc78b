package tours

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"planetholiday/db"
	"planetholiday/models"
	"planetholiday/rdx"
	"planetholiday/schema"
	"planetholiday/utils"
)

// Fields returned by public list views; full documents only come back from
// the single-entity fetch.
var listProjection = bson.M{
	"tourid": 1, "title": 1, "slug": 1, "shortDescription": 1,
	"duration": 1, "price": 1, "originalPrice": 1, "images": 1,
	"category": 1, "rating": 1,
}

var catalogSort = bson.D{{Key: "rating.average", Value: -1}, {Key: "createdAt", Value: -1}}

// decorate fills the read-time derivations.
func decorate(list []models.TourPackage) []models.TourPackage {
	for i := range list {
		list[i].DiscountPercentage = schema.DiscountPercentage(list[i].Price, list[i].OriginalPrice)
		list[i].PricePerDay = schema.PricePerDay(list[i].Price, list[i].Duration)
	}
	return list
}

func findPublished(ctx context.Context, filter bson.M, limit int64) ([]models.TourPackage, error) {
	filter["status"] = models.StatusPublished
	opts := options.Find().SetSort(catalogSort).SetLimit(limit).SetProjection(listProjection)
	return utils.FindAndDecode[models.TourPackage](ctx, db.ToursCollection, filter, opts)
}

// GET /api/tours/featured
func GetFeaturedTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := utils.ParseLimit(r, 6, 50)

	if cached, _ := rdx.RdxGet("tour:featured"); cached != "" && limit == 6 {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	tours, err := findPublished(ctx, bson.M{"featured": true}, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tours")
		return
	}
	tours = decorate(tours)

	if limit == 6 {
		if data, err := json.Marshal(tours); err == nil {
			rdx.RdxSet("tour:featured", string(data))
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, tours)
}

// GET /api/tours/category/:category
func GetToursByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Unknown categories fall through to an empty result, by filter
	// semantics; enum membership is only enforced at write time.
	tours, err := findPublished(ctx, bson.M{"category": ps.ByName("category")}, utils.ParseLimit(r, 12, 50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tours")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, decorate(tours))
}

// GET /api/tours/search?q=
func SearchTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	if query == "" {
		utils.RespondWithJSON(w, http.StatusOK, []models.TourPackage{})
		return
	}

	// QuoteMeta keeps the query a literal substring.
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"title": pattern},
		{"description": pattern},
		{"locations.name": pattern},
	}}

	tours, err := findPublished(ctx, filter, utils.ParseLimit(r, 20, 50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, decorate(tours))
}

// GET /api/tours/tour/:slug
func GetTourBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var tour models.TourPackage
	err := db.ToursCollection.FindOne(ctx, bson.M{
		"slug":   ps.ByName("slug"),
		"status": models.StatusPublished,
	}).Decode(&tour)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour package not found")
		return
	}

	tour.DiscountPercentage = schema.DiscountPercentage(tour.Price, tour.OriginalPrice)
	tour.PricePerDay = schema.PricePerDay(tour.Price, tour.Duration)
	utils.RespondWithJSON(w, http.StatusOK, tour)
}

// GET /api/admin/tours: full documents, pagination plus status, category,
// featured and search filters.
func ListTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	if f := q.Get("featured"); f != "" {
		filter["featured"] = f == "true"
	}
	if search := q.Get("search"); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
			{"locations.name": pattern},
		}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	tours, err := utils.FindAndDecode[models.TourPackage](ctx, db.ToursCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tours")
		return
	}

	total, err := db.ToursCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count tours")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"tours": decorate(tours),
		"total": total,
	})
}
