package models

import "time"

// Restaurant is a tracked place on either the visited or the to-visit list.
type Restaurant struct {
	ID            string              `json:"id" firestore:"id"`
	Name          string              `json:"name" firestore:"name"`
	Address       string              `json:"address" firestore:"address"`
	Location      *GeoLocation        `json:"location,omitempty" firestore:"-"`
	Geohash       string              `json:"geohash,omitempty" firestore:"geohash,omitempty"`
	Tags          map[string][]string `json:"tags,omitempty" firestore:"tags,omitempty"`
	Ratings       []RatingEntry       `json:"ratings" firestore:"ratings"`
	AverageRating float64             `json:"averageRating" firestore:"averageRating"`
	DateAdded     time.Time           `json:"dateAdded" firestore:"dateAdded"`
	UpdatedAt     *time.Time          `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

type GeoLocation struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// RestaurantInput is the client payload for creating or editing a restaurant.
// Location is resolved server-side from the address, never taken from the client.
type RestaurantInput struct {
	Name    string              `json:"name" binding:"required"`
	Address string              `json:"address" binding:"required"`
	Tags    map[string][]string `json:"tags"`
}

// RestaurantUpdateInput carries the partial fields of an edit. Empty fields are
// left unchanged; ratings and averageRating are never editable through here.
type RestaurantUpdateInput struct {
	Name    string              `json:"name"`
	Address string              `json:"address"`
	Tags    map[string][]string `json:"tags"`
}
