package models

import "time"

// Audit actions recorded for mutating operations.
const (
	AuditCreateRestaurant = "CREATE_RESTAURANT"
	AuditUpdateRestaurant = "UPDATE_RESTAURANT"
	AuditDeleteRestaurant = "DELETE_RESTAURANT"
	AuditCreateRating     = "CREATE_RATING"
	AuditUpdateRating     = "UPDATE_RATING"
)

// AuditEvent is a best-effort trace of a mutating action. Details never carry
// user-written comment text, only whether a comment was provided.
type AuditEvent struct {
	ID         string                 `json:"id" firestore:"id"`
	UserID     string                 `json:"userId" firestore:"userId"`
	Action     string                 `json:"action" firestore:"action"`
	Collection string                 `json:"collection" firestore:"collection"`
	DocID      string                 `json:"docId" firestore:"docId"`
	Details    map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
	CreatedAt  time.Time              `json:"createdAt" firestore:"createdAt"`
}
