package service

import "cartoncaps/invite/internal/model"

// IsOwner reports whether the caller identified by authID owns the
// resource. It fails for an empty identity (unauthenticated caller), for
// a resource whose owner was never loaded, and for a mismatch. Pure; the
// resource must already be in memory.
func IsOwner(authID string, resource model.Ownable) bool {
	if authID == "" {
		return false
	}
	owner, ok := resource.OwnerAuthID()
	return ok && owner == authID
}
