package service

import "errors"

var (
	// ErrReferralSourceNotFound reports a source name absent from the catalog.
	ErrReferralSourceNotFound = errors.New("referral source not found")
	// ErrReferralCodeNotFound reports a submitted code that belongs to no
	// user, or one that does not match the caller's own code.
	ErrReferralCodeNotFound = errors.New("referral code not found")
	// ErrResourceNotFound reports a missing record or one the caller does
	// not own; the two cases are indistinguishable on purpose.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrDuplicateRedemption reports that the redeemer already redeemed
	// this code.
	ErrDuplicateRedemption = errors.New("code already redeemed by this user")
	// ErrProfileUnavailable reports a failed profile lookup.
	ErrProfileUnavailable = errors.New("user profile unavailable")
)
