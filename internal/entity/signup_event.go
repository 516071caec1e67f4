package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SignupAction string

const (
	SignupCreated     SignupAction = "signup_created"
	EmailSent         SignupAction = "email_sent"
	EmailFailed       SignupAction = "email_failed"
	EmailVerified     SignupAction = "email_verified"
	DuplicateRejected SignupAction = "duplicate_rejected"
)

// SignupEvent is a best-effort audit trail of waitlist activity. It has no
// behavioral effect on the signup state machine.
type SignupEvent struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	SignupID *uuid.UUID   `gorm:"type:uuid;index"`
	Signup   *EmailSignup `gorm:"constraint:OnDelete:SET NULL"`

	Action SignupAction `gorm:"type:varchar(32);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}

// BeforeCreate ensures a UUID is present before persisting.
func (e *SignupEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
