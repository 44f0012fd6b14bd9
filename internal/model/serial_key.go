package model

import (
	"strings"
	"time"
)

// SerialKey is a pre-issued, single-use activation code.  Redemption sets
// IsUsed, ActivatedByUserID and ExpiresAt together in one step; none of the
// three ever reverts, even after the entitlement expires.  Expired keys stay
// used forever, they just stop counting as active.
//
// Fields:
//  Code              – canonical uppercase form of the key.
//  Duration          – entitlement length granted upon redemption.
//  IsUsed            – set true permanently on first successful redemption.
//  ActivatedByUserID – owning user once redeemed (nil before).
//  ExpiresAt         – absolute end of the entitlement (nil before redemption).
type SerialKey struct {
	Code              string
	Duration          time.Duration
	IsUsed            bool
	ActivatedByUserID *uint64
	ExpiresAt         *time.Time
}

// CanonicalCode normalizes a user-supplied key code for lookup.  Codes are
// case-insensitive on the wire and uppercase in the registry.
func CanonicalCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ActiveFor reports whether the key currently grants userID a live
// entitlement.  Both the activation path and the status path go through
// this predicate so "active" has exactly one definition.
func (k *SerialKey) ActiveFor(userID uint64, now time.Time) bool {
	return k.ActivatedByUserID != nil && *k.ActivatedByUserID == userID &&
		k.ExpiresAt != nil && k.ExpiresAt.After(now)
}
