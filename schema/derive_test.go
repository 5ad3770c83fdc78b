package schema

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planetholiday/models"
)

func TestDeriveSlug(t *testing.T) {
	cases := map[string]string{
		"Sigiriya Rock Fortress":        "sigiriya-rock-fortress",
		"  Ella -- & --  Nine Arches! ": "ella-nine-arches",
		"Çulture Tripş":                 "ulture-trip",
		"2026 New Year Special":         "2026-new-year-special",
		"!!!":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, DeriveSlug(in), "input %q", in)
	}
}

func TestDeriveSlugIdempotent(t *testing.T) {
	slug := DeriveSlug("A 5-Day Tea Country Escape")
	assert.Equal(t, slug, DeriveSlug(slug))
}

func TestDerivePublishedAtSetOnce(t *testing.T) {
	assert.Nil(t, DerivePublishedAt(models.StatusDraft, nil))

	first := DerivePublishedAt(models.StatusPublished, nil)
	if assert.NotNil(t, first) {
		assert.WithinDuration(t, time.Now(), *first, time.Second)
	}

	// archive then re-publish keeps the original instant
	same := DerivePublishedAt(models.StatusArchived, first)
	assert.Equal(t, first, same)
	same = DerivePublishedAt(models.StatusPublished, first)
	assert.Equal(t, first, same)
}

func TestDeriveReadingTime(t *testing.T) {
	assert.Equal(t, 1, DeriveReadingTime(""))
	assert.Equal(t, 1, DeriveReadingTime("short note"))
	assert.Equal(t, 1, DeriveReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, DeriveReadingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 5, DeriveReadingTime(strings.Repeat("word ", 900)))
}

func TestDiscountPercentage(t *testing.T) {
	assert.Equal(t, 20, DiscountPercentage(400, 500))
	assert.Equal(t, 0, DiscountPercentage(500, 0))
	assert.Equal(t, 0, DiscountPercentage(0, 500))
	assert.Equal(t, 33, DiscountPercentage(100, 150))
}

func TestPricePerDay(t *testing.T) {
	assert.Equal(t, 100, PricePerDay(500, "5 Days / 4 Nights"))
	assert.Equal(t, 500, PricePerDay(500, "Full Day"))
	assert.Equal(t, 500, PricePerDay(500, ""))
	assert.Equal(t, 167, PricePerDay(500, "3 days"))
}

func TestUpdateRating(t *testing.T) {
	r := models.Rating{}
	r = UpdateRating(r, 5)
	r = UpdateRating(r, 5)
	r = UpdateRating(r, 4)
	assert.Equal(t, int64(3), r.Count)
	assert.InDelta(t, 4.6666, r.Average, 0.001)
}

func TestAddImageSingleMain(t *testing.T) {
	images := AddImage(nil, "https://cdn.example.com/a.jpg", "a", true)
	images = AddImage(images, "https://cdn.example.com/b.jpg", "b", false)
	images = AddImage(images, "https://cdn.example.com/c.jpg", "c", true)

	mains := 0
	for _, img := range images {
		if img.IsMain {
			mains++
			assert.Equal(t, "https://cdn.example.com/c.jpg", img.URL)
		}
	}
	assert.Equal(t, 1, mains)
	assert.Len(t, images, 3)
}

func TestRemoveImage(t *testing.T) {
	images := AddImage(nil, "https://cdn.example.com/a.jpg", "a", true)
	images = AddImage(images, "https://cdn.example.com/b.jpg", "b", false)

	images = RemoveImage(images, "https://cdn.example.com/a.jpg")
	assert.Len(t, images, 1)
	assert.Equal(t, "https://cdn.example.com/b.jpg", images[0].URL)

	// absent URL is a no-op
	images = RemoveImage(images, "https://cdn.example.com/nope.jpg")
	assert.Len(t, images, 1)
}
