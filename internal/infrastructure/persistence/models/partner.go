package models

import (
	"github.com/erp/usability/internal/domain/inventory"
	"github.com/google/uuid"
)

// PartnerModel is the subset of the partner table read for display names.
type PartnerModel struct {
	BaseModel
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "res_partner"
}

// MessageModel is the persistence model for messages posted on records.
type MessageModel struct {
	BaseModel
	ResModel string    `gorm:"type:varchar(64);not null;index:idx_mail_message_res,priority:1"`
	ResID    uuid.UUID `gorm:"type:uuid;not null;index:idx_mail_message_res,priority:2"`
	Body     string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (MessageModel) TableName() string {
	return "mail_message"
}

// ToDomain converts the persistence model to a domain Message.
func (m *MessageModel) ToDomain() *inventory.Message {
	return &inventory.Message{
		BaseEntity: m.BaseModel.ToDomain(),
		ResModel:   m.ResModel,
		ResID:      m.ResID,
		Body:       m.Body,
	}
}

// MessageModelFromDomain creates a new persistence model from a domain Message.
func MessageModelFromDomain(msg *inventory.Message) *MessageModel {
	m := &MessageModel{
		ResModel: msg.ResModel,
		ResID:    msg.ResID,
		Body:     msg.Body,
	}
	m.FromDomainBaseEntity(msg.BaseEntity)
	return m
}
