// Package schema holds the write-time derivations and validation rules
// applied to content entities before they are persisted.
package schema

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"planetholiday/models"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
var firstInt = regexp.MustCompile(`\d+`)

// DeriveSlug lowercases the candidate text, collapses every run of
// characters outside [a-z0-9] to a single '-', and strips leading and
// trailing dashes. Applied only when the entity's slug is still empty; an
// existing slug is never overwritten.
func DeriveSlug(candidate string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(candidate), "-")
	return strings.Trim(slug, "-")
}

// DerivePublishedAt sets the publish instant exactly once: on the first
// save where status is published and publishedAt is still unset. It is
// never cleared by a later status change, so re-publishing keeps the
// original timestamp.
func DerivePublishedAt(status string, publishedAt *time.Time) *time.Time {
	if status == models.StatusPublished && publishedAt == nil {
		now := time.Now()
		return &now
	}
	return publishedAt
}

// DeriveReadingTime estimates minutes at 200 words per minute, floor 1.
func DeriveReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / 200))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// DiscountPercentage is a read-time computation, never persisted.
func DiscountPercentage(price, originalPrice float64) int {
	if originalPrice > 0 && price > 0 {
		return int(math.Round((originalPrice - price) / originalPrice * 100))
	}
	return 0
}

// PricePerDay divides the price by the leading integer in the free-text
// duration ("5 Days / 4 Nights" → 5), defaulting to 1 day.
func PricePerDay(price float64, duration string) int {
	days := 1
	if m := firstInt.FindString(duration); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			days = n
		}
	}
	return int(math.Round(price / float64(days)))
}

// UpdateRating folds one new sample into the incrementally maintained
// average. No raw sample list exists to re-derive from.
func UpdateRating(r models.Rating, newRating float64) models.Rating {
	total := r.Average*float64(r.Count) + newRating
	r.Count++
	r.Average = total / float64(r.Count)
	return r
}

// AddImage appends an image to the list. A new main image clears the
// main flag on every existing entry first, so at most one image is main.
func AddImage(images []models.Image, url, alt string, isMain bool) []models.Image {
	if isMain {
		for i := range images {
			images[i].IsMain = false
		}
	}
	return append(images, models.Image{URL: url, Alt: alt, IsMain: isMain})
}

// RemoveImage drops entries matching the URL exactly. Absent URLs are a
// no-op, not an error.
func RemoveImage(images []models.Image, url string) []models.Image {
	out := images[:0]
	for _, img := range images {
		if img.URL != url {
			out = append(out, img)
		}
	}
	return out
}
