package tours

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planetholiday/models"
	"planetholiday/schema"
)

func strPtr(s string) *string { return &s }

func TestApplyTourPatchKeepsSlug(t *testing.T) {
	tour := models.TourPackage{
		Title:    "Cultural Triangle Explorer",
		Slug:     "cultural-triangle-explorer",
		Price:    400,
		Category: "Cultural",
	}

	applyTourPatch(&tour, &models.TourPatch{Title: strPtr("Cultural Triangle Deluxe")})

	assert.Equal(t, "Cultural Triangle Deluxe", tour.Title)
	assert.Equal(t, "cultural-triangle-explorer", tour.Slug, "renaming a tour must not change its URL")
	assert.Equal(t, float64(400), tour.Price)
}

func TestApplyTourPatchIgnoresSlugReplacement(t *testing.T) {
	tour := models.TourPackage{Title: "Galle Day Trip", Slug: "galle-day-trip"}

	applyTourPatch(&tour, &models.TourPatch{Slug: strPtr("totally-different")})
	assert.Equal(t, "galle-day-trip", tour.Slug, "a live slug cannot be replaced")

	// clearing is the one sanctioned path; the update handler re-derives
	// from the title afterwards
	applyTourPatch(&tour, &models.TourPatch{Slug: strPtr("")})
	assert.Empty(t, tour.Slug)
}

func TestApplyTourPatchMergesOnlyPresentFields(t *testing.T) {
	price := 450.0
	featured := true
	tour := models.TourPackage{Title: "Hill Country Rail", Price: 300, Category: "Scenic"}

	applyTourPatch(&tour, &models.TourPatch{Price: &price, Featured: &featured})

	assert.Equal(t, float64(450), tour.Price)
	assert.True(t, tour.Featured)
	assert.Equal(t, "Hill Country Rail", tour.Title)
	assert.Equal(t, "Scenic", tour.Category)
}

func TestNewTourDerivedFields(t *testing.T) {
	tour := models.TourPackage{
		Title:         "Cultural Triangle Explorer",
		Price:         400,
		OriginalPrice: 500,
		Duration:      "5 Days / 4 Nights",
	}
	schema.ApplyTourDefaults(&tour)
	tour.Slug = schema.DeriveSlug(tour.Title)

	assert.Equal(t, "cultural-triangle-explorer", tour.Slug)
	assert.Equal(t, 20, schema.DiscountPercentage(tour.Price, tour.OriginalPrice))
	assert.Equal(t, 80, schema.PricePerDay(tour.Price, tour.Duration))
	assert.Equal(t, models.StatusDraft, tour.Status)
}
