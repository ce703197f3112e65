package model

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutoMigrate runs GORM auto-migration for all models and creates custom indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&ReferralCode{},
		&ReferralSource{},
		&Referral{},
		&Redemption{},
	); err != nil {
		return err
	}

	// A redeemer may redeem a given code at most once. The constraint must
	// live in the store: two concurrent redemptions race past any
	// read-then-write check in the service.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_redemptions_redeemer_code " +
			"ON redemptions (redeemer_id, referral_code_id)",
	).Error
}

// RedemptionUniqueIndex is the constraint violated when a redeemer redeems
// the same code twice. The redemption service translates exactly this
// violation into a conflict.
const RedemptionUniqueIndex = "idx_redemptions_redeemer_code"

// SeedReferralSources populates the fixed source catalog. Safe to run on
// every startup.
func SeedReferralSources(db *gorm.DB) error {
	sources := []ReferralSource{
		{ID: 1, Name: "Android"},
		{ID: 2, Name: "iOS"},
		{ID: 3, Name: "Chrome"},
		{ID: 4, Name: "Edge"},
		{ID: 5, Name: "Firefox"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sources).Error
}
