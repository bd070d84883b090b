// spotlight/sources/psql/models/session.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is one conversational interaction about a single innovation.
// Rows are written by the upstream assessment pipeline; this service only reads them.
type Session struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID      string    `json:"sessionId" gorm:"type:varchar(255);not null;uniqueIndex"`
	ThreadID       string    `json:"threadId" gorm:"type:varchar(255);not null"`
	AssistantID    string    `json:"assistantId" gorm:"type:varchar(255);not null"`
	InnovationName string    `json:"innovationName" gorm:"type:varchar(255);not null"`
	WorkshopID     *string   `json:"workshopId" gorm:"type:varchar(255);index"`
	Completed      bool      `json:"completed" gorm:"not null;default:false"`
	Created        time.Time `json:"created" gorm:"not null;index"`
	LastActivity   time.Time `json:"lastActivity" gorm:"not null"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()
	if s.Created.IsZero() {
		s.Created = now
	}
	if s.LastActivity.IsZero() {
		s.LastActivity = s.Created
	}
	return nil
}
