package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	MemberID     uint `gorm:"index;not null" json:"member_id"`
	MembershipID uint `gorm:"not null" json:"membership_id"`

	TrainerID uint    `gorm:"index;not null" json:"trainer_id"`
	Trainer   Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Date is an ISO calendar day (YYYY-MM-DD); StartTime and EndTime are HH:MM.
	Date      string `gorm:"size:10;index;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Location string `gorm:"size:120" json:"location"`
	Notes    string `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ap *Appointment) BeforeCreate(tx *gorm.DB) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	return nil
}
