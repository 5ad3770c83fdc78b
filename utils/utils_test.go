package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"safari", "yala"}, SplitTags("Safari, yala"))
	assert.Equal(t, []string{"beach"}, SplitTags("beach,,  ,Beach"))
	assert.Empty(t, SplitTags(""))
	assert.NotNil(t, SplitTags(""))
}

func TestContainsIgnoreCase(t *testing.T) {
	assert.True(t, ContainsIgnoreCase("Cultural Triangle Explorer", "cultural"))
	assert.True(t, ContainsIgnoreCase("amara@example.com", "AMARA"))
	assert.False(t, ContainsIgnoreCase("Hill Country Rail", "beach"))
}

func TestGenerateRandomDigitString(t *testing.T) {
	s := GenerateRandomDigitString(6)
	assert.Len(t, s, 6)
	for _, c := range s {
		assert.True(t, c >= '0' && c <= '9')
	}
}
