package blogs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"planetholiday/db"
	"planetholiday/models"
	"planetholiday/schema"
	"planetholiday/utils"
)

// POST /api/blog/article/:slug/comments: public; comments start unapproved and
// stay hidden until an admin approves them.
func AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var article models.BlogArticle
	err := db.ArticlesCollection.FindOne(ctx,
		publishedFilter(bson.M{"slug": ps.ByName("slug")}),
		options.FindOne().SetProjection(bson.M{"articleid": 1}),
	).Decode(&article)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	var comment models.Comment
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&comment); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verr := schema.ValidateComment(&comment); verr != nil {
		respondValidation(w, verr)
		return
	}

	comment.CommentID = utils.GetUUID()
	comment.ArticleID = article.ArticleID
	comment.Approved = false
	comment.CreatedAt = time.Now()

	if _, err := db.CommentsCollection.InsertOne(ctx, comment); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, comment)
}

// GET /api/blog/article/:slug/comments: approved comments only, oldest first.
func ListComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var article models.BlogArticle
	err := db.ArticlesCollection.FindOne(ctx,
		publishedFilter(bson.M{"slug": ps.ByName("slug")}),
		options.FindOne().SetProjection(bson.M{"articleid": 1}),
	).Decode(&article)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	comments, err := utils.FindAndDecode[models.Comment](ctx, db.CommentsCollection,
		bson.M{"articleid": article.ArticleID, "approved": true}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, comments)
}

// GET /api/admin/comments: moderation queue across all articles.
func ListAllComments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if a := r.URL.Query().Get("approved"); a != "" {
		filter["approved"] = a == "true"
	}
	if id := r.URL.Query().Get("article"); id != "" {
		filter["articleid"] = id
	}

	skip, limit := utils.ParsePagination(r, 50, 200)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	comments, err := utils.FindAndDecode[models.Comment](ctx, db.CommentsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, comments)
}

// PATCH /api/admin/comments/:id/approve: approving an already approved
// comment succeeds without change.
func ApproveComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.CommentsCollection.UpdateOne(ctx,
		bson.M{"commentid": ps.ByName("id")},
		bson.M{"$set": bson.M{"approved": true}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to approve comment")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Comment not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Comment approved"})
}

// DELETE /api/admin/comments/:id: deleting an unknown id is a no-op.
func RemoveComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.CommentsCollection.DeleteOne(ctx, bson.M{"commentid": ps.ByName("id")}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove comment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Comment removed"})
}
