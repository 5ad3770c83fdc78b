package models

import "time"

var ArticleCategories = []string{
	"Travel Tips", "Destination Guides", "Cultural Insights",
	"Adventure Stories", "Food & Cuisine", "Photography",
	"Travel Planning", "Local Experiences", "Seasonal Travel", "Travel News",
}

type FeaturedImage struct {
	URL     string `bson:"url" json:"url"`
	Alt     string `bson:"alt,omitempty" json:"alt,omitempty"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

type SEO struct {
	Title        string   `bson:"title,omitempty" json:"title,omitempty"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords     []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	CanonicalURL string   `bson:"canonicalUrl,omitempty" json:"canonicalUrl,omitempty"`
}

type SocialCard struct {
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

type Social struct {
	Facebook SocialCard `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter  SocialCard `bson:"twitter,omitempty" json:"twitter,omitempty"`
}

type BlogArticle struct {
	ArticleID       string        `bson:"articleid,omitempty" json:"articleid"`
	Title           string        `bson:"title" json:"title"`
	Slug            string        `bson:"slug" json:"slug"`
	Content         string        `bson:"content" json:"content"`
	Excerpt         string        `bson:"excerpt" json:"excerpt"`
	FeaturedImage   FeaturedImage `bson:"featuredImage" json:"featuredImage"`
	Images          []Image       `bson:"images,omitempty" json:"images,omitempty"`
	Category        string        `bson:"category" json:"category"`
	Tags            []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	Author          string        `bson:"author" json:"author"`
	CoAuthors       []string      `bson:"coAuthors,omitempty" json:"coAuthors,omitempty"`
	Status          string        `bson:"status" json:"status"`
	Featured        bool          `bson:"featured" json:"featured"`
	PublishedAt     *time.Time    `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	ReadingTime     int           `bson:"readingTime" json:"readingTime"`
	Views           int64         `bson:"views" json:"views"`
	Likes           int64         `bson:"likes" json:"likes"`
	RelatedArticles []string      `bson:"relatedArticles,omitempty" json:"relatedArticles,omitempty"`
	Destinations    []string      `bson:"destinations,omitempty" json:"destinations,omitempty"`
	TourPackages    []string      `bson:"tourPackages,omitempty" json:"tourPackages,omitempty"`
	SEO             SEO           `bson:"seo,omitempty" json:"seo,omitempty"`
	Social          Social        `bson:"social,omitempty" json:"social,omitempty"`
	Audit           `bson:",inline"`
}

// Comment lives in its own collection keyed (articleid, commentid); the
// article document never embeds the comment list.
type Comment struct {
	CommentID string    `bson:"commentid" json:"commentid"`
	ArticleID string    `bson:"articleid" json:"articleid"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Content   string    `bson:"content" json:"content"`
	Approved  bool      `bson:"approved" json:"approved"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type ArticlePatch struct {
	Title           *string        `json:"title,omitempty"`
	Slug            *string        `json:"slug,omitempty"`
	Content         *string        `json:"content,omitempty"`
	Excerpt         *string        `json:"excerpt,omitempty"`
	FeaturedImage   *FeaturedImage `json:"featuredImage,omitempty"`
	Category        *string        `json:"category,omitempty"`
	Tags            *[]string      `json:"tags,omitempty"`
	CoAuthors       *[]string      `json:"coAuthors,omitempty"`
	Status          *string        `json:"status,omitempty"`
	Featured        *bool          `json:"featured,omitempty"`
	RelatedArticles *[]string      `json:"relatedArticles,omitempty"`
	Destinations    *[]string      `json:"destinations,omitempty"`
	TourPackages    *[]string      `json:"tourPackages,omitempty"`
	SEO             *SEO           `json:"seo,omitempty"`
	Social          *Social        `json:"social,omitempty"`
}
