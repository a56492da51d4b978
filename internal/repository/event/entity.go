package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"gorm.io/gorm"
)

// EventEntity represents the database entity for Event with GORM tags
type EventEntity struct {
	ID            uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	Title         string     `gorm:"column:title;type:varchar(200);not null"`
	Description   string     `gorm:"column:description;type:text"`
	StartDate     time.Time  `gorm:"column:start_date;not null;index"`
	EndDate       time.Time  `gorm:"column:end_date;not null"`
	AllDay        bool       `gorm:"column:all_day;default:false"`
	Category      string     `gorm:"column:category;type:varchar(100);index"`
	GoogleEventID *string    `gorm:"column:google_event_id;type:varchar(255);index"`
	TranscriptID  *uuid.UUID `gorm:"column:transcript_id;type:char(36);index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime(3)"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime(3)"`
}

// TableName returns the table name for GORM
func (EventEntity) TableName() string {
	return "events"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (e *EventEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ToDomain converts EventEntity to domain Event
func (e *EventEntity) ToDomain() *event.Event {
	return &event.Event{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		AllDay:        e.AllDay,
		Category:      e.Category,
		GoogleEventID: e.GoogleEventID,
		TranscriptID:  e.TranscriptID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// FromDomain converts domain Event to EventEntity
func (e *EventEntity) FromDomain(domainEvent *event.Event) {
	e.ID = domainEvent.ID
	e.Title = domainEvent.Title
	e.Description = domainEvent.Description
	e.StartDate = domainEvent.StartDate
	e.EndDate = domainEvent.EndDate
	e.AllDay = domainEvent.AllDay
	e.Category = domainEvent.Category
	e.GoogleEventID = domainEvent.GoogleEventID
	e.TranscriptID = domainEvent.TranscriptID
	e.CreatedAt = domainEvent.CreatedAt
	e.UpdatedAt = domainEvent.UpdatedAt
}

// NewEventEntityFromDomain creates a new EventEntity from domain Event
func NewEventEntityFromDomain(domainEvent *event.Event) *EventEntity {
	entity := &EventEntity{}
	entity.FromDomain(domainEvent)
	return entity
}
