package schema

import (
	"slices"
	"strconv"
	"strings"

	"planetholiday/models"
)

// checker accumulates per-field violations so callers always get the full
// list, not just the first failure.
type checker struct {
	verr *models.ValidationError
}

func newChecker() *checker {
	return &checker{verr: models.NewValidationError()}
}

func (c *checker) required(field, value, label string) {
	if strings.TrimSpace(value) == "" {
		c.verr.Add(field, label+" is required")
	}
}

func (c *checker) maxLen(field, value string, max int, label string) {
	if len(value) > max {
		c.verr.Add(field, label+" cannot exceed "+strconv.Itoa(max)+" characters")
	}
}

func (c *checker) nonNegative(field string, value float64, label string) {
	if value < 0 {
		c.verr.Add(field, label+" cannot be negative")
	}
}

func (c *checker) oneOf(field, value string, allowed []string, label string) {
	if value != "" && !slices.Contains(allowed, value) {
		c.verr.Add(field, label+" must be one of: "+strings.Join(allowed, ", "))
	}
}

func (c *checker) result() *models.ValidationError {
	if c.verr.HasErrors() {
		return c.verr
	}
	return nil
}

// ApplyTourDefaults fills the defaulted fields before validation.
func ApplyTourDefaults(t *models.TourPackage) {
	if t.Difficulty == "" {
		t.Difficulty = "Moderate"
	}
	if t.Status == "" {
		t.Status = models.StatusDraft
	}
	if t.MaxGroupSize == 0 {
		t.MaxGroupSize = 12
	}
}

func ValidateTour(t *models.TourPackage) *models.ValidationError {
	c := newChecker()
	c.required("title", t.Title, "Tour title")
	c.maxLen("title", t.Title, 100, "Title")
	c.required("description", t.Description, "Description")
	c.maxLen("description", t.Description, 2000, "Description")
	c.required("shortDescription", t.ShortDescription, "Short description")
	c.maxLen("shortDescription", t.ShortDescription, 300, "Short description")
	c.required("duration", t.Duration, "Duration")
	c.nonNegative("price", t.Price, "Price")
	c.nonNegative("originalPrice", t.OriginalPrice, "Original price")
	c.required("category", t.Category, "Category")
	c.oneOf("category", t.Category, models.TourCategories, "Category")
	c.oneOf("difficulty", t.Difficulty, models.TourDifficulties, "Difficulty")
	c.oneOf("status", t.Status, models.Statuses, "Status")
	if t.MaxGroupSize < 1 {
		c.verr.Add("maxGroupSize", "Group size must be at least 1")
	}
	if t.MinAge < 0 {
		c.verr.Add("minAge", "Minimum age cannot be negative")
	}
	for _, h := range t.Highlights {
		c.maxLen("highlights", h, 200, "Highlight")
	}
	for _, m := range t.Seasonality.AvailableMonths {
		c.oneOf("seasonality.availableMonths", m, models.Months, "Month")
	}
	c.maxLen("meta.title", t.Meta.Title, 60, "Meta title")
	c.maxLen("meta.description", t.Meta.Description, 160, "Meta description")
	return c.result()
}

// ValidateTourPatch revalidates only the fields present in the patch; a
// field that was already invalid but untouched is not re-flagged.
func ValidateTourPatch(p *models.TourPatch) *models.ValidationError {
	c := newChecker()
	if p.Title != nil {
		c.required("title", *p.Title, "Tour title")
		c.maxLen("title", *p.Title, 100, "Title")
	}
	if p.Description != nil {
		c.required("description", *p.Description, "Description")
		c.maxLen("description", *p.Description, 2000, "Description")
	}
	if p.ShortDescription != nil {
		c.required("shortDescription", *p.ShortDescription, "Short description")
		c.maxLen("shortDescription", *p.ShortDescription, 300, "Short description")
	}
	if p.Duration != nil {
		c.required("duration", *p.Duration, "Duration")
	}
	if p.Price != nil {
		c.nonNegative("price", *p.Price, "Price")
	}
	if p.OriginalPrice != nil {
		c.nonNegative("originalPrice", *p.OriginalPrice, "Original price")
	}
	if p.Category != nil {
		c.oneOf("category", *p.Category, models.TourCategories, "Category")
	}
	if p.Difficulty != nil {
		c.oneOf("difficulty", *p.Difficulty, models.TourDifficulties, "Difficulty")
	}
	if p.Status != nil {
		c.oneOf("status", *p.Status, models.Statuses, "Status")
	}
	if p.MaxGroupSize != nil && *p.MaxGroupSize < 1 {
		c.verr.Add("maxGroupSize", "Group size must be at least 1")
	}
	if p.MinAge != nil && *p.MinAge < 0 {
		c.verr.Add("minAge", "Minimum age cannot be negative")
	}
	if p.Highlights != nil {
		for _, h := range *p.Highlights {
			c.maxLen("highlights", h, 200, "Highlight")
		}
	}
	if p.Meta != nil {
		c.maxLen("meta.title", p.Meta.Title, 60, "Meta title")
		c.maxLen("meta.description", p.Meta.Description, 160, "Meta description")
	}
	return c.result()
}

func ApplyDestinationDefaults(d *models.Destination) {
	if d.Location.Country == "" {
		d.Location.Country = "Sri Lanka"
	}
	if d.Status == "" {
		d.Status = models.StatusDraft
	}
}

func ValidateDestination(d *models.Destination) *models.ValidationError {
	c := newChecker()
	c.required("name", d.Name, "Destination name")
	c.maxLen("name", d.Name, 100, "Name")
	c.required("description", d.Description, "Description")
	c.maxLen("description", d.Description, 2000, "Description")
	c.required("shortDescription", d.ShortDescription, "Short description")
	c.maxLen("shortDescription", d.ShortDescription, 300, "Short description")
	c.required("location.city", d.Location.City, "City")
	c.required("location.region", d.Location.Region, "Region")
	if d.Location.Coordinates.Lat == 0 && d.Location.Coordinates.Lng == 0 {
		c.verr.Add("location.coordinates", "Coordinates are required")
	}
	c.required("category", d.Category, "Category")
	c.oneOf("category", d.Category, models.DestinationCategories, "Category")
	c.oneOf("status", d.Status, models.Statuses, "Status")
	for _, h := range d.Highlights {
		c.maxLen("highlights", h, 200, "Highlight")
	}
	for _, tip := range d.Tips {
		c.maxLen("tips", tip, 300, "Tip")
	}
	for _, a := range d.Attractions {
		c.required("attractions.name", a.Name, "Attraction name")
	}
	c.maxLen("meta.title", d.Meta.Title, 60, "Meta title")
	c.maxLen("meta.description", d.Meta.Description, 160, "Meta description")
	return c.result()
}

func ValidateDestinationPatch(p *models.DestinationPatch) *models.ValidationError {
	c := newChecker()
	if p.Name != nil {
		c.required("name", *p.Name, "Destination name")
		c.maxLen("name", *p.Name, 100, "Name")
	}
	if p.Description != nil {
		c.required("description", *p.Description, "Description")
		c.maxLen("description", *p.Description, 2000, "Description")
	}
	if p.ShortDescription != nil {
		c.required("shortDescription", *p.ShortDescription, "Short description")
		c.maxLen("shortDescription", *p.ShortDescription, 300, "Short description")
	}
	if p.Location != nil {
		c.required("location.city", p.Location.City, "City")
		c.required("location.region", p.Location.Region, "Region")
	}
	if p.Category != nil {
		c.oneOf("category", *p.Category, models.DestinationCategories, "Category")
	}
	if p.Status != nil {
		c.oneOf("status", *p.Status, models.Statuses, "Status")
	}
	if p.Highlights != nil {
		for _, h := range *p.Highlights {
			c.maxLen("highlights", h, 200, "Highlight")
		}
	}
	if p.Tips != nil {
		for _, tip := range *p.Tips {
			c.maxLen("tips", tip, 300, "Tip")
		}
	}
	if p.Attractions != nil {
		for _, a := range *p.Attractions {
			c.required("attractions.name", a.Name, "Attraction name")
		}
	}
	if p.Meta != nil {
		c.maxLen("meta.title", p.Meta.Title, 60, "Meta title")
		c.maxLen("meta.description", p.Meta.Description, 160, "Meta description")
	}
	return c.result()
}

func ApplyArticleDefaults(a *models.BlogArticle) {
	if a.Status == "" {
		a.Status = models.StatusDraft
	}
}

func ValidateArticle(a *models.BlogArticle) *models.ValidationError {
	c := newChecker()
	c.required("title", a.Title, "Article title")
	c.maxLen("title", a.Title, 200, "Title")
	c.required("content", a.Content, "Content")
	c.maxLen("content", a.Content, 50000, "Content")
	c.required("excerpt", a.Excerpt, "Excerpt")
	c.maxLen("excerpt", a.Excerpt, 500, "Excerpt")
	c.required("featuredImage.url", a.FeaturedImage.URL, "Featured image")
	c.required("category", a.Category, "Category")
	c.oneOf("category", a.Category, models.ArticleCategories, "Category")
	c.required("author", a.Author, "Author")
	c.oneOf("status", a.Status, models.Statuses, "Status")
	for _, tag := range a.Tags {
		c.maxLen("tags", tag, 50, "Tag")
	}
	c.maxLen("seo.title", a.SEO.Title, 60, "SEO title")
	c.maxLen("seo.description", a.SEO.Description, 160, "SEO description")
	return c.result()
}

func ValidateArticlePatch(p *models.ArticlePatch) *models.ValidationError {
	c := newChecker()
	if p.Title != nil {
		c.required("title", *p.Title, "Article title")
		c.maxLen("title", *p.Title, 200, "Title")
	}
	if p.Content != nil {
		c.required("content", *p.Content, "Content")
		c.maxLen("content", *p.Content, 50000, "Content")
	}
	if p.Excerpt != nil {
		c.required("excerpt", *p.Excerpt, "Excerpt")
		c.maxLen("excerpt", *p.Excerpt, 500, "Excerpt")
	}
	if p.FeaturedImage != nil {
		c.required("featuredImage.url", p.FeaturedImage.URL, "Featured image")
	}
	if p.Category != nil {
		c.oneOf("category", *p.Category, models.ArticleCategories, "Category")
	}
	if p.Status != nil {
		c.oneOf("status", *p.Status, models.Statuses, "Status")
	}
	if p.Tags != nil {
		for _, tag := range *p.Tags {
			c.maxLen("tags", tag, 50, "Tag")
		}
	}
	if p.SEO != nil {
		c.maxLen("seo.title", p.SEO.Title, 60, "SEO title")
		c.maxLen("seo.description", p.SEO.Description, 160, "SEO description")
	}
	return c.result()
}

// ValidateComment covers the public comment form.
func ValidateComment(cm *models.Comment) *models.ValidationError {
	c := newChecker()
	c.required("name", cm.Name, "Name")
	c.required("email", cm.Email, "Email")
	c.required("content", cm.Content, "Comment")
	c.maxLen("content", cm.Content, 1000, "Comment")
	return c.result()
}

// ValidateLead covers the public booking inquiry form.
func ValidateLead(l *models.LeadData) *models.ValidationError {
	c := newChecker()
	c.required("name", l.Name, "Name")
	c.required("email", l.Email, "Email")
	return c.result()
}
