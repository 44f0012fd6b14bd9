package repository

import (
	"sync"
	"time"

	"github.com/iliyamo/license-activation/internal/model"
)

// KeyStore is the in-memory key registry. The entire redeem sequence runs
// inside one critical section: the already-active scan, the code lookup,
// the used check and the mutation are not individually atomic, so nothing
// else may interleave between them.
type KeyStore struct {
	mu   sync.RWMutex
	keys map[string]*model.SerialKey

	// Now supplies the clock for every expiry comparison; tests replace it
	// with a fixed time.
	Now func() time.Time
}

// NewKeyStore seeds the registry from a code → duration catalog. Codes are
// canonicalized to uppercase and every key starts unused.
func NewKeyStore(catalog map[string]time.Duration) *KeyStore {
	s := &KeyStore{
		keys: make(map[string]*model.SerialKey, len(catalog)),
		Now:  time.Now,
	}
	for code, d := range catalog {
		c := model.CanonicalCode(code)
		s.keys[c] = &model.SerialKey{Code: c, Duration: d}
	}
	return s
}

// ActiveKeyFor returns a copy of the key currently granting userID a live
// entitlement, if any. Pure read: expired bindings are skipped, never
// cleared.
func (s *KeyStore) ActiveKeyFor(userID uint64) (model.SerialKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.Now()
	for _, k := range s.keys {
		if k.ActiveFor(userID, now) {
			return *k, true
		}
	}
	return model.SerialKey{}, false
}

// Redeem runs the activation sequence for userID and returns the resulting
// expiry. The checks are ordered: a caller holding a live key is rejected
// before the submitted key's own state is even looked at, so an unused key
// cannot be stacked on top of a running entitlement.
func (s *KeyStore) Redeem(userID uint64, rawCode string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()

	for _, k := range s.keys {
		if k.ActiveFor(userID, now) {
			return time.Time{}, ErrAlreadyActive
		}
	}

	k, ok := s.keys[model.CanonicalCode(rawCode)]
	if !ok {
		return time.Time{}, ErrKeyNotFound
	}
	if k.IsUsed {
		return time.Time{}, ErrKeyUsed
	}

	// Lock the key to the user. This transition is permanent; there is no
	// deactivation or refund path.
	exp := now.Add(k.Duration)
	k.IsUsed = true
	k.ActivatedByUserID = &userID
	k.ExpiresAt = &exp
	return exp, nil
}
