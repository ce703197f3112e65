package model

// ReferralSource is a fixed catalog entry naming a distribution channel.
// The catalog is seeded at startup and never written by end-user action.
type ReferralSource struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(32);uniqueIndex;not null" json:"name"`
}

func (ReferralSource) TableName() string { return "referral_sources" }
