package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailSignup is one waitlist entry per normalized email address.
// The verification token is the sole secret tying the emailed link to the
// row; it is cleared in the same update that marks the row verified.
type EmailSignup struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null"`

	VerificationToken  string `gorm:"type:text;index"`
	VerificationSentAt time.Time

	IsVerified bool `gorm:"default:false;not null"`
	VerifiedAt *time.Time

	UserAgent *string `gorm:"type:text"`

	CreatedAt time.Time
}

// BeforeCreate ensures a UUID is present before persisting.
func (s *EmailSignup) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *EmailSignup) ExpiresAt(ttl time.Duration) time.Time {
	return s.VerificationSentAt.Add(ttl)
}

func (s *EmailSignup) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.After(s.ExpiresAt(ttl))
}
