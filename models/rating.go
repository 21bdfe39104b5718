package models

import (
	"math"
	"time"
)

// RatingMode tags the two rating entry variants. The visited list takes full
// entries (wouldReturn + comment), the to-visit list only simple ones.
type RatingMode string

const (
	RatingModeFull   RatingMode = "full"
	RatingModeSimple RatingMode = "simple"
)

// RatingEntry is one user's rating of a restaurant. At most one entry per
// userId exists on a restaurant; re-rating replaces the whole entry.
// WouldReturn and Comment are only meaningful when Mode is full.
type RatingEntry struct {
	UserID      string     `json:"userId" firestore:"userId"`
	Mode        RatingMode `json:"mode" firestore:"mode"`
	Rating      int        `json:"rating" firestore:"rating"`
	WouldReturn bool       `json:"wouldReturn,omitempty" firestore:"wouldReturn,omitempty"`
	Comment     string     `json:"comment,omitempty" firestore:"comment,omitempty"`
	Date        time.Time  `json:"date" firestore:"date"`
}

// NewFullRating builds a visited-list entry.
func NewFullRating(userID string, rating int, wouldReturn bool, comment string, date time.Time) RatingEntry {
	return RatingEntry{
		UserID:      userID,
		Mode:        RatingModeFull,
		Rating:      rating,
		WouldReturn: wouldReturn,
		Comment:     comment,
		Date:        date,
	}
}

// NewSimpleRating builds a to-visit entry. Full-only fields stay zeroed, so a
// simple re-rating over a previous full entry drops wouldReturn and comment.
func NewSimpleRating(userID string, rating int, date time.Time) RatingEntry {
	return RatingEntry{
		UserID: userID,
		Mode:   RatingModeSimple,
		Rating: rating,
		Date:   date,
	}
}

// AverageRating is the arithmetic mean of the entries' ratings rounded to one
// decimal place, 0 for an empty set. The stored averageRating field must always
// equal this value for the stored ratings.
func AverageRating(entries []RatingEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range entries {
		sum += entry.Rating
	}
	mean := float64(sum) / float64(len(entries))
	return math.Round(mean*10) / 10
}

// RatingInput is the client payload for submitting a rating. WouldReturn and
// Comment are ignored on the to-visit (simple mode) route.
type RatingInput struct {
	Rating      int    `json:"rating" binding:"required"`
	WouldReturn *bool  `json:"wouldReturn"`
	Comment     string `json:"comment"`
}
