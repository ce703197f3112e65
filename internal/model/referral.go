package model

import (
	"time"

	"github.com/google/uuid"
)

// Referral records that a referrer shared their own code via a source.
// A referrer may log any number of referrals, e.g. one per channel.
type Referral struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReferrerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"referrer_id"`
	ReferralCodeID   uuid.UUID `gorm:"type:uuid;not null" json:"referral_code_id"`
	ReferralSourceID int       `gorm:"not null" json:"referral_source_id"`
	CreatedAt        time.Time `json:"created_at"`

	Referrer       *User           `gorm:"foreignKey:ReferrerID" json:"referrer,omitempty"`
	ReferralCode   *ReferralCode   `gorm:"foreignKey:ReferralCodeID" json:"referral_code,omitempty"`
	ReferralSource *ReferralSource `gorm:"foreignKey:ReferralSourceID" json:"referral_source,omitempty"`
}

func (Referral) TableName() string { return "referrals" }

// OwnerAuthID reports the referrer's external identity. The second return
// is false when the Referrer association has not been loaded.
func (r *Referral) OwnerAuthID() (string, bool) {
	if r.Referrer == nil {
		return "", false
	}
	return r.Referrer.AuthID, true
}
