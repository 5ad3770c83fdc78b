package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planetholiday/models"
)

func validTour() models.TourPackage {
	return models.TourPackage{
		Title:            "Kandy Cultural Escape",
		Description:      "Three days around the hill capital.",
		ShortDescription: "Temples, gardens and the lake.",
		Duration:         "3 Days / 2 Nights",
		Price:            450,
		Category:         "Cultural",
		Difficulty:       "Easy",
		MaxGroupSize:     10,
		Status:           models.StatusDraft,
	}
}

func TestValidateTourCollectsAllViolations(t *testing.T) {
	tour := models.TourPackage{
		Price:    -5,
		Category: "Skydiving",
		Status:   "pending",
	}
	ApplyTourDefaults(&tour)

	verr := ValidateTour(&tour)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "status")
}

func TestValidateTourAcceptsValid(t *testing.T) {
	tour := validTour()
	ApplyTourDefaults(&tour)
	assert.Nil(t, ValidateTour(&tour))
}

func TestApplyTourDefaults(t *testing.T) {
	var tour models.TourPackage
	ApplyTourDefaults(&tour)
	assert.Equal(t, "Moderate", tour.Difficulty)
	assert.Equal(t, models.StatusDraft, tour.Status)
	assert.Equal(t, 12, tour.MaxGroupSize)
}

func TestValidateTourPatchOnlyTouchedFields(t *testing.T) {
	// empty patch never fails, whatever state the stored entity is in
	assert.Nil(t, ValidateTourPatch(&models.TourPatch{}))

	bad := strings.Repeat("x", 101)
	price := -1.0
	verr := ValidateTourPatch(&models.TourPatch{Title: &bad, Price: &price})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "price")
	assert.NotContains(t, verr.Fields, "description")
}

func TestApplyDestinationDefaults(t *testing.T) {
	var dest models.Destination
	ApplyDestinationDefaults(&dest)
	assert.Equal(t, "Sri Lanka", dest.Location.Country)
	assert.Equal(t, models.StatusDraft, dest.Status)

	dest.Location.Country = "Maldives"
	ApplyDestinationDefaults(&dest)
	assert.Equal(t, "Maldives", dest.Location.Country)
}

func TestValidateDestinationRequiresCoordinates(t *testing.T) {
	dest := models.Destination{
		Name:             "Galle Fort",
		Description:      "Dutch-era ramparts by the sea.",
		ShortDescription: "Colonial fort town.",
		Category:         "Historical",
		Location: models.Location{
			City:   "Galle",
			Region: "Southern Province",
		},
	}
	ApplyDestinationDefaults(&dest)

	verr := ValidateDestination(&dest)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "location.coordinates")

	dest.Location.Coordinates = models.Coordinates{Lat: 6.0261, Lng: 80.2170}
	assert.Nil(t, ValidateDestination(&dest))
}

func TestValidateArticle(t *testing.T) {
	article := models.BlogArticle{
		Title:         "Monsoon Season on the South Coast",
		Content:       "When to go and what to pack.",
		Excerpt:       "Timing a south coast trip.",
		FeaturedImage: models.FeaturedImage{URL: "https://cdn.example.com/monsoon.jpg"},
		Category:      "Travel Planning",
		Author:        "editorial",
	}
	ApplyArticleDefaults(&article)
	assert.Nil(t, ValidateArticle(&article))

	article.Author = ""
	article.Category = "Gossip"
	verr := ValidateArticle(&article)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "author")
	assert.Contains(t, verr.Fields, "category")
}

func TestValidateComment(t *testing.T) {
	verr := ValidateComment(&models.Comment{})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "content")

	long := strings.Repeat("x", 1001)
	verr = ValidateComment(&models.Comment{Name: "A", Email: "a@example.com", Content: long})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "content")

	assert.Nil(t, ValidateComment(&models.Comment{Name: "A", Email: "a@example.com", Content: "Lovely article."}))
}

func TestValidateLead(t *testing.T) {
	verr := ValidateLead(&models.LeadData{})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")

	assert.Nil(t, ValidateLead(&models.LeadData{Name: "Jo", Email: "jo@example.com"}))
}
