package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		ratings  []int
		expected float64
	}{
		{name: "empty", ratings: nil, expected: 0},
		{name: "single", ratings: []int{4}, expected: 4.0},
		{name: "five_and_three", ratings: []int{5, 3}, expected: 4.0},
		{name: "exact_mean_after_third", ratings: []int{5, 3, 4}, expected: 4.0},
		{name: "rounds_up", ratings: []int{5, 5, 4}, expected: 4.7},
		{name: "rounds_down", ratings: []int{5, 4, 4}, expected: 4.3},
		{name: "all_ones", ratings: []int{1, 1, 1}, expected: 1.0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			entries := make([]RatingEntry, 0, len(testCase.ratings))
			for _, rating := range testCase.ratings {
				entries = append(entries, NewSimpleRating("u", rating, now))
			}
			assert.Equal(t, testCase.expected, AverageRating(entries))
		})
	}
}

func TestNewSimpleRatingStripsFullFields(t *testing.T) {
	entry := NewSimpleRating("u1", 2, time.Now())

	assert.Equal(t, RatingModeSimple, entry.Mode)
	assert.False(t, entry.WouldReturn)
	assert.Empty(t, entry.Comment)
}

func TestValidTag(t *testing.T) {
	assert.True(t, ValidTag("cuisine", "thai"))
	assert.False(t, ValidTag("cuisine", "martian"))
	assert.False(t, ValidTag("nonsense", "thai"))
}
