package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FamilyFact is the immutable record published for every committed
// change to a family record. Downstream consumers (audit trail, case
// management) replay these in order.
type FamilyFact struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	FamilyID   uuid.UUID `json:"family_id"`
	EntityID   uuid.UUID `json:"entity_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing family facts to a message queue
type EventPublisher interface {
	// PublishFamilyFact publishes one committed change for async processing
	PublishFamilyFact(ctx context.Context, fact *FamilyFact) error

	// Close releases any resources held by the publisher
	Close() error
}
