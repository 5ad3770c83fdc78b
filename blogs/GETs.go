package blogs

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
	"planetholiday/utils"
)

var listProjection = bson.M{
	"articleid": 1, "title": 1, "slug": 1, "excerpt": 1, "featuredImage": 1,
	"category": 1, "tags": 1, "author": 1, "publishedAt": 1,
	"readingTime": 1, "views": 1, "likes": 1,
}

var publishedSort = bson.D{{Key: "publishedAt", Value: -1}}

// publishedFilter also requires publishedAt <= now so scheduled articles
// stay hidden until their time.
func publishedFilter(extra bson.M) bson.M {
	filter := bson.M{
		"status":      models.StatusPublished,
		"publishedAt": bson.M{"$lte": time.Now()},
	}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

func findPublished(ctx context.Context, extra bson.M, skip, limit int64) ([]models.BlogArticle, error) {
	opts := options.Find().SetSort(publishedSort).SetSkip(skip).SetLimit(limit).SetProjection(listProjection)
	return utils.FindAndDecode[models.BlogArticle](ctx, db.ArticlesCollection, publishedFilter(extra), opts)
}

// GET /api/blog
func GetPublishedArticles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 10, 50)
	articles, err := findPublished(ctx, bson.M{}, skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, articles)
}

// GET /api/blog/featured
func GetFeaturedArticles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := utils.ParseLimit(r, 6, 50)

	if cached, _ := rdx.RdxGet("article:featured"); cached != "" && limit == 6 {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	articles, err := findPublished(ctx, bson.M{"featured": true}, 0, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}

	if limit == 6 {
		if data, err := json.Marshal(articles); err == nil {
			rdx.RdxSet("article:featured", string(data))
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, articles)
}

// GET /api/blog/category/:category
func GetArticlesByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	articles, err := findPublished(ctx, bson.M{"category": ps.ByName("category")}, 0, utils.ParseLimit(r, 10, 50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, articles)
}

// GET /api/blog/search?q=&tags=: free-text match, optionally narrowed to
// a comma-separated tag list.
func SearchArticles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	tags := utils.SplitTags(r.URL.Query().Get("tags"))
	if query == "" && len(tags) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.BlogArticle{})
		return
	}

	extra := bson.M{}
	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		extra["$or"] = []bson.M{
			{"title": pattern},
			{"content": pattern},
			{"excerpt": pattern},
			{"tags": pattern},
		}
	}
	if len(tags) > 0 {
		extra["tags"] = bson.M{"$in": tags}
	}

	articles, err := findPublished(ctx, extra, 0, utils.ParseLimit(r, 20, 50))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, articles)
}

// GET /api/blog/article/:slug/related: same category or any overlapping tag,
// the article itself excluded.
func GetRelatedArticles(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var article models.BlogArticle
	err := db.ArticlesCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&article)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	extra := bson.M{
		"articleid": bson.M{"$ne": article.ArticleID},
		"$or": []bson.M{
			{"category": article.Category},
			{"tags": bson.M{"$in": tagList(article.Tags)}},
		},
	}

	articles, err := findPublished(ctx, extra, 0, utils.ParseLimit(r, 4, 20))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch related articles")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, articles)
}

// $in over an empty list matches nothing, leaving category as the only
// relation for untagged articles.
func tagList(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	return tags
}

// GET /api/blog/article/:slug: full document; each fetch counts a view.
func GetArticleBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var article models.BlogArticle
	err := db.ArticlesCollection.FindOneAndUpdate(ctx,
		publishedFilter(bson.M{"slug": ps.ByName("slug")}),
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&article)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, article)
}

// GET /api/admin/blog
func ListArticles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
			{"content": pattern},
			{"excerpt": pattern},
			{"tags": pattern},
		}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	articles, err := utils.FindAndDecode[models.BlogArticle](ctx, db.ArticlesCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}

	total, err := db.ArticlesCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count articles")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"articles": articles,
		"total":    total,
	})
}
