package model

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidReferralCode rejects any code value that is not exactly 6
// alphanumeric characters.
var ErrInvalidReferralCode = errors.New("referral code must be 6 alphanumeric characters")

var referralCodePattern = regexp.MustCompile(`^[a-zA-Z0-9]{6}$`)

// ValidateReferralCode checks a submitted code value before any I/O happens.
func ValidateReferralCode(code string) error {
	if !referralCodePattern.MatchString(code) {
		return ErrInvalidReferralCode
	}
	return nil
}

// ReferralCode is the human-shareable token tied one-to-one to a user.
// Code values are globally unique and immutable once assigned.
type ReferralCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code      string    `gorm:"type:varchar(6);uniqueIndex;not null" json:"code"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReferralCode) TableName() string { return "referral_codes" }

// NewReferralCode validates the code value and returns the unsaved record.
func NewReferralCode(code string) (*ReferralCode, error) {
	if err := ValidateReferralCode(code); err != nil {
		return nil, err
	}
	return &ReferralCode{Code: code}, nil
}
