package model

import (
	"time"

	"github.com/google/uuid"
)

// User anchors all referral activity to an external authentication
// identity. Users are provisioned lazily the first time an identity shows
// up in an add-referral or add-redemption call; they are never deleted.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AuthID    string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"auth_id"`
	CreatedAt time.Time `json:"created_at"`

	ReferralCode *ReferralCode `gorm:"foreignKey:UserID" json:"referral_code,omitempty"`
	Referrals    []Referral    `gorm:"foreignKey:ReferrerID" json:"referrals,omitempty"`
	Redemptions  []Redemption  `gorm:"foreignKey:RedeemerID" json:"redemptions,omitempty"`

	// RedeemedReferrals are redemptions performed by other users against
	// this user's code.
	RedeemedReferrals []Redemption `gorm:"foreignKey:ReferrerID" json:"redeemed_referrals,omitempty"`
}

func (User) TableName() string { return "users" }
