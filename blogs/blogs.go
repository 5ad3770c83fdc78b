package blogs

import (
	"context"
	"encoding/json"
	"log"
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
	if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return id
	}
	return ""
}

func respondValidation(w http.ResponseWriter, verr *models.ValidationError) {
	utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
		"error":  "Validation failed",
		"fields": verr.Fields,
	})
}

// POST /api/admin/blog
func CreateArticle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var article models.BlogArticle
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	schema.ApplyArticleDefaults(&article)
	if article.Slug == "" {
		article.Slug = schema.DeriveSlug(article.Title)
	}
	article.ReadingTime = schema.DeriveReadingTime(article.Content)
	article.PublishedAt = schema.DerivePublishedAt(article.Status, article.PublishedAt)

	if verr := schema.ValidateArticle(&article); verr != nil {
		respondValidation(w, verr)
		return
	}

	article.ArticleID = utils.GetUUID()
	article.Views = 0
	article.Likes = 0
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	article.CreatedBy = actorID(r)
	article.UpdatedBy = article.CreatedBy

	if _, err := db.ArticlesCollection.InsertOne(ctx, article); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "An article with this slug already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}

	go mq.Emit(ctx, "article-created", mq.Event{EntityType: "article", Method: "POST", EntityID: article.ArticleID})
	utils.RespondWithJSON(w, http.StatusCreated, article)
}

func applyArticlePatch(article *models.BlogArticle, patch *models.ArticlePatch) {
	contentChanged := false
	if patch.Title != nil {
		article.Title = *patch.Title
	}
	// A slug can only be cleared; clearing makes the update path derive a
	// fresh one from the title. Replacement values are ignored.
	if patch.Slug != nil && *patch.Slug == "" {
		article.Slug = ""
	}
	if patch.Excerpt != nil {
		article.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		article.Content = *patch.Content
		contentChanged = true
	}
	if patch.FeaturedImage != nil {
		article.FeaturedImage = *patch.FeaturedImage
	}
	if patch.Category != nil {
		article.Category = *patch.Category
	}
	if patch.Tags != nil {
		article.Tags = *patch.Tags
	}
	if patch.CoAuthors != nil {
		article.CoAuthors = *patch.CoAuthors
	}
	if patch.Status != nil {
		article.Status = *patch.Status
	}
	if patch.Featured != nil {
		article.Featured = *patch.Featured
	}
	if patch.RelatedArticles != nil {
		article.RelatedArticles = *patch.RelatedArticles
	}
	if patch.Destinations != nil {
		article.Destinations = *patch.Destinations
	}
	if patch.TourPackages != nil {
		article.TourPackages = *patch.TourPackages
	}
	if patch.SEO != nil {
		article.SEO = *patch.SEO
	}
	if patch.Social != nil {
		article.Social = *patch.Social
	}

	if contentChanged {
		article.ReadingTime = schema.DeriveReadingTime(article.Content)
	}
	// publishedAt is set on the first transition to published and never
	// rewritten after that.
	article.PublishedAt = schema.DerivePublishedAt(article.Status, article.PublishedAt)
}

// PUT /api/admin/blog/:id
func UpdateArticle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var patch models.ArticlePatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verr := schema.ValidateArticlePatch(&patch); verr != nil {
		respondValidation(w, verr)
		return
	}

	id := ps.ByName("id")
	var article models.BlogArticle
	if err := db.ArticlesCollection.FindOne(ctx, bson.M{"articleid": id}).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	applyArticlePatch(&article, &patch)
	if article.Slug == "" {
		article.Slug = schema.DeriveSlug(article.Title)
	}
	article.UpdatedAt = time.Now()
	article.UpdatedBy = actorID(r)

	if _, err := db.ArticlesCollection.ReplaceOne(ctx, bson.M{"articleid": id}, article); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "An article with this slug already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}

	go mq.Emit(ctx, "article-updated", mq.Event{EntityType: "article", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, article)
}

// DELETE /api/admin/blog/:id: removes the article, its stored images
// and all of its comments.
func DeleteArticle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	var article models.BlogArticle
	if err := db.ArticlesCollection.FindOne(ctx, bson.M{"articleid": id}).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	images := make([]models.Image, 0, len(article.Images)+1)
	if article.FeaturedImage.URL != "" {
		images = append(images, models.Image{URL: article.FeaturedImage.URL})
	}
	images = append(images, article.Images...)
	filemgr.CleanupImages(images)

	if _, err := db.CommentsCollection.DeleteMany(ctx, bson.M{"articleid": id}); err != nil {
		log.Printf("failed to delete comments for article %s: %v", id, err)
	}

	if _, err := db.ArticlesCollection.DeleteOne(ctx, bson.M{"articleid": id}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	go mq.Emit(ctx, "article-deleted", mq.Event{EntityType: "article", Method: "DELETE", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Article deleted"})
}

// PATCH /api/admin/blog/:id/status
func SetArticleStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !utils.ContainsString(models.Statuses, body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	id := ps.ByName("id")
	var article models.BlogArticle
	if err := db.ArticlesCollection.FindOne(ctx, bson.M{"articleid": id}).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	article.Status = body.Status
	article.PublishedAt = schema.DerivePublishedAt(article.Status, article.PublishedAt)
	article.UpdatedAt = time.Now()
	article.UpdatedBy = actorID(r)

	if _, err := db.ArticlesCollection.ReplaceOne(ctx, bson.M{"articleid": id}, article); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	go mq.Emit(ctx, "article-updated", mq.Event{EntityType: "article", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, article)
}

// PATCH /api/admin/blog/:id/featured
func ToggleArticleFeatured(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	var article models.BlogArticle
	if err := db.ArticlesCollection.FindOne(ctx, bson.M{"articleid": id}).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	_, err := db.ArticlesCollection.UpdateOne(ctx, bson.M{"articleid": id}, bson.M{"$set": bson.M{
		"featured":  !article.Featured,
		"updatedAt": time.Now(),
		"updatedBy": actorID(r),
	}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}

	go mq.Emit(ctx, "article-updated", mq.Event{EntityType: "article", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "featured": !article.Featured})
}

// POST /api/blog/article/:slug/like: public, unauthenticated counter.
func LikeArticle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ArticlesCollection.UpdateOne(ctx,
		bson.M{"slug": ps.ByName("slug"), "status": models.StatusPublished},
		bson.M{"$inc": bson.M{"likes": 1}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to like article")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Liked"})
}

// POST /api/admin/blog/:id/images
func AddArticleImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var img models.Image
	if err := json.NewDecoder(r.Body).Decode(&img); err != nil || img.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid image payload")
		return
	}

	id := ps.ByName("id")
	var article models.BlogArticle
	if err := db.ArticlesCollection.FindOne(ctx, bson.M{"articleid": id}).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	article.Images = schema.AddImage(article.Images, img.URL, img.Alt, img.IsMain)
	article.UpdatedAt = time.Now()
	article.UpdatedBy = actorID(r)

	if _, err := db.ArticlesCollection.ReplaceOne(ctx, bson.M{"articleid": id}, article); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add image")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, article.Images)
}

// DELETE /api/admin/blog/:id/images?url=
func RemoveArticleImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	url := r.URL.Query().Get("url")
	if url == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing url parameter")
		return
	}

	id := ps.ByName("id")
	var article models.BlogArticle
	if err := db.ArticlesCollection.FindOne(ctx, bson.M{"articleid": id}).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	article.Images = schema.RemoveImage(article.Images, url)
	article.UpdatedAt = time.Now()
	article.UpdatedBy = actorID(r)

	if _, err := db.ArticlesCollection.ReplaceOne(ctx, bson.M{"articleid": id}, article); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove image")
		return
	}
	if err := filemgr.DeleteImage(url); err != nil {
		log.Printf("failed to remove stored image %s: %v", url, err)
	}
	utils.RespondWithJSON(w, http.StatusOK, article.Images)
}
