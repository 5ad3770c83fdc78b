package blogs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"planetholiday/models"
)

func TestPublishedFilterGatesStatusAndTime(t *testing.T) {
	filter := publishedFilter(nil)

	assert.Equal(t, models.StatusPublished, filter["status"])

	window, ok := filter["publishedAt"].(bson.M)
	require.True(t, ok)
	lte, ok := window["$lte"].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), lte, time.Second, "scheduled articles must stay hidden")
}

func TestPublishedFilterMergesExtra(t *testing.T) {
	filter := publishedFilter(bson.M{"category": "Wildlife", "slug": "leopards-of-yala"})

	assert.Equal(t, models.StatusPublished, filter["status"])
	assert.Equal(t, "Wildlife", filter["category"])
	assert.Equal(t, "leopards-of-yala", filter["slug"])
}

func TestTagList(t *testing.T) {
	assert.Equal(t, []string{"safari", "yala"}, tagList([]string{"safari", "yala"}))
	assert.Empty(t, tagList(nil))
	assert.NotNil(t, tagList(nil), "an empty $in must match nothing, not everything")
}
