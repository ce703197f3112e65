package model

import (
	"time"

	"github.com/google/uuid"
)

// Redemption records that one user redeemed another user's code.
// At most one redemption may exist per (redeemer, referral code) pair;
// the composite unique index created in AutoMigrate enforces this at the
// store so concurrent duplicates cannot both commit.
type Redemption struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RedeemerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"redeemer_id"`
	ReferrerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"referrer_id"`
	ReferralCodeID   uuid.UUID `gorm:"type:uuid;not null" json:"referral_code_id"`
	ReferralSourceID int       `gorm:"not null" json:"referral_source_id"`
	RedeemedAt       time.Time `gorm:"autoCreateTime" json:"redeemed_at"`

	Redeemer       *User           `gorm:"foreignKey:RedeemerID" json:"redeemer,omitempty"`
	Referrer       *User           `gorm:"foreignKey:ReferrerID" json:"referrer,omitempty"`
	ReferralCode   *ReferralCode   `gorm:"foreignKey:ReferralCodeID" json:"referral_code,omitempty"`
	ReferralSource *ReferralSource `gorm:"foreignKey:ReferralSourceID" json:"referral_source,omitempty"`
}

func (Redemption) TableName() string { return "redemptions" }

// OwnerAuthID reports the redeemer's external identity. The second return
// is false when the Redeemer association has not been loaded.
func (r *Redemption) OwnerAuthID() (string, bool) {
	if r.Redeemer == nil {
		return "", false
	}
	return r.Redeemer.AuthID, true
}
