package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercase", "sneak-peek-123", "SNEAK-PEEK-123"},
		{"mixed case", "Daily-Trial-456", "DAILY-TRIAL-456"},
		{"surrounding whitespace", "  monthly-sub-789  ", "MONTHLY-SUB-789"},
		{"already canonical", "SNEAK-PEEK-123", "SNEAK-PEEK-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalCode(tt.raw))
		})
	}
}

func TestActiveFor(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uid := uint64(7)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name string
		key  SerialKey
		user uint64
		want bool
	}{
		{"unredeemed key", SerialKey{Code: "K", Duration: time.Hour}, uid, false},
		{"live for owner", SerialKey{IsUsed: true, ActivatedByUserID: &uid, ExpiresAt: &future}, uid, true},
		{"live but different user", SerialKey{IsUsed: true, ActivatedByUserID: &uid, ExpiresAt: &future}, 8, false},
		{"expired for owner", SerialKey{IsUsed: true, ActivatedByUserID: &uid, ExpiresAt: &past}, uid, false},
		{"expires exactly now", SerialKey{IsUsed: true, ActivatedByUserID: &uid, ExpiresAt: &now}, uid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.ActiveFor(tt.user, now))
		})
	}
}
