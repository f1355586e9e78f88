package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ORDER_PLACED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event codes emitted by the ordering assistant.
const (
	TypeUserLogin            = "USER_LOGIN"
	TypeUserRegistered       = "USER_REGISTERED"
	TypeOrderPlaced          = "ORDER_PLACED"
	TypeOrderCancelled       = "ORDER_CANCELLED"
	TypePaymentRecorded      = "PAYMENT_RECORDED"
	TypeReservationBooked    = "RESERVATION_BOOKED"
	TypeReservationCancelled = "RESERVATION_CANCELLED"
)

// BaseEvent is the plain implementation every emitter uses.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds an event stamped with the current time.
func New(eventType string, data map[string]interface{}) Event {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}
