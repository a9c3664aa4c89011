package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventName is the semantic name of a domain fact emitted by the
// family aggregate.
type EventName string

const (
	EventFamilyCreated        EventName = "family-created"
	EventMemberAdded          EventName = "member-added"
	EventMemberUpdated        EventName = "member-updated"
	EventMarriageRegistered   EventName = "marriage-registered"
	EventMarriageEnded        EventName = "marriage-ended"
	EventPolygamyDetected     EventName = "polygamy-detected"
	EventHouseEstablished     EventName = "house-established"
	EventHouseDissolved       EventName = "house-dissolved"
	EventRelationshipDefined  EventName = "relationship-defined"
	EventCohabitationRecorded EventName = "cohabitation-recorded"
	EventAdoptionRecorded     EventName = "adoption-recorded"
	EventFamilyArchived       EventName = "family-archived"
)

// FamilyEvent is an immutable fact describing one structural change to
// a family record. The aggregate only accumulates facts in order; the
// caller drains them and hands them to the persistence/integration
// layer. The aggregate never delivers them anywhere itself.
type FamilyEvent struct {
	ID         uuid.UUID
	FamilyID   uuid.UUID
	EntityID   uuid.UUID // The member/marriage/house/edge/record involved.
	Name       EventName
	OccurredAt time.Time
}

func newFamilyEvent(familyID, entityID uuid.UUID, name EventName, at time.Time) FamilyEvent {
	return FamilyEvent{
		ID:         uuid.New(),
		FamilyID:   familyID,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: at,
	}
}
