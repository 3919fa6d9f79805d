package domain

import "time"

// AuditFields holds the timestamps the store maintains for every entity.
// Callers never set these directly; services stamp them on write.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
