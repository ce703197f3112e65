package model

// Ownable is implemented by records that belong to a single user. The
// owner is reported as the user's external auth identity; the boolean is
// false when the owning association was not loaded from the store, so a
// caller that forgot to preload gets a failed check instead of a panic.
type Ownable interface {
	OwnerAuthID() (string, bool)
}

var (
	_ Ownable = (*Referral)(nil)
	_ Ownable = (*Redemption)(nil)
)
