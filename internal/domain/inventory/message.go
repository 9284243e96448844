package inventory

import (
	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
)

// Resource model names used on posted messages
const (
	ResModelPicking = "stock.picking"
)

// Message is a note posted on a record's discussion thread
type Message struct {
	shared.BaseEntity
	ResModel string
	ResID    uuid.UUID
	Body     string
}

// NewMessage creates a message attached to the given record
func NewMessage(resModel string, resID uuid.UUID, body string) *Message {
	return &Message{
		BaseEntity: shared.NewBaseEntity(),
		ResModel:   resModel,
		ResID:      resID,
		Body:       body,
	}
}
