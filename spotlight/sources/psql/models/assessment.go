// spotlight/sources/psql/models/assessment.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assessment is the scored outcome of a completed session, at most one per session.
// TotalScore is the sum of the three 1..5 dimension scores, enforced by the producer.
type Assessment struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID      string    `json:"sessionId" gorm:"type:varchar(255);not null;uniqueIndex"`
	InnovationName string    `json:"innovationName" gorm:"type:varchar(255);not null"`
	ProblemValue   int       `json:"problemValue" gorm:"not null"`
	SolutionFit    int       `json:"solutionFit" gorm:"not null"`
	ValueForMoney  int       `json:"valueForMoney" gorm:"not null"`
	TotalScore     int       `json:"totalScore" gorm:"not null;index"`
	Recommendation string    `json:"recommendation" gorm:"type:text;not null"`
	Completed      time.Time `json:"completed" gorm:"not null;index"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Completed.IsZero() {
		a.Completed = time.Now().UTC()
	}
	return nil
}

// All lists every model the dashboard reads, in migration order.
func All() []any {
	return []any{&Session{}, &Message{}, &Assessment{}}
}
