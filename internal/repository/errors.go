// Package repository holds the in-memory stores and the sentinel errors
// they return. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios and map each one to
// an HTTP status code. For example, ErrKeyUsed signals that a serial key
// was already redeemed (403), while ErrAlreadyActive signals that the
// caller still holds a live entitlement (409).
package repository

import "errors"

// ErrEmailExists is returned when registration collides with an existing
// account. Emails are compared case-insensitively.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no account matches the given email.
var ErrUserNotFound = errors.New("user not found")

// ErrKeyNotFound is returned when a code does not exist in the registry.
var ErrKeyNotFound = errors.New("serial key not found")

// ErrKeyUsed is returned when a key was already redeemed. Redemption is
// strictly one-time, regardless of who redeemed it or whether the
// entitlement has since expired.
var ErrKeyUsed = errors.New("serial key already used")

// ErrAlreadyActive is returned when the caller still holds an unexpired
// entitlement. A user may have at most one live key at a time.
var ErrAlreadyActive = errors.New("user already has an active key")
