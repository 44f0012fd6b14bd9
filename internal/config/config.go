package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report bad configuration values
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time expresses durations and TTLs
)

// DefaultJWTSecret is the signing secret used when JWT_SECRET is unset.
// Shipping a hardcoded secret is a known weakness carried over from the
// original deployment; any real environment must override it.
const DefaultJWTSecret = "YOUR_SUPER_SECRET_KEY_CHANGE_THIS"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The whole struct is passed explicitly at
// construction so services never reach for ambient globals and tests can
// inject deterministic secrets and costs.
type Config struct {
	Port             string        // HTTP port to listen on
	JWTSecret        string        // secret used to sign session tokens
	TokenTTL         time.Duration // session token time-to-live
	BcryptCost       int           // bcrypt cost for password hashing
	TrialKeyDuration time.Duration // entitlement length of the trial key
}

// Load reads configuration values from environment variables.  Nothing here
// is required: every value falls back to the defaults the original service
// ran with, so the server starts with an empty environment.
func Load() Config {
	return Config{
		Port:             getEnv("PORT", "3000"),                 // port to bind the HTTP server
		JWTSecret:        getEnv("JWT_SECRET", DefaultJWTSecret), // token signing secret
		TokenTTL:         time.Duration(getEnvInt("TOKEN_TTL_DAYS", 7)) * 24 * time.Hour,
		BcryptCost:       getEnvInt("BCRYPT_COST", 10),           // bcrypt cost factor
		TrialKeyDuration: time.Duration(getEnvInt("TRIAL_KEY_DURATION_MS", 10_000)) * time.Millisecond,
	}
}

// Catalog returns the static serial-key catalog seeded into the key registry
// at startup.  Keys are fixed configuration, not user-manageable; only the
// trial key's duration varies, via TRIAL_KEY_DURATION_MS.
func (c Config) Catalog() map[string]time.Duration {
	return map[string]time.Duration{
		"SNEAK-PEEK-123":  c.TrialKeyDuration,
		"DAILY-TRIAL-456": 2 * 24 * time.Hour,
		"MONTHLY-SUB-789": 30 * 24 * time.Hour,
	}
}

// getEnv retrieves an environment variable, returning def when the variable
// is unset or empty.
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// getEnvInt is like getEnv but converts the value to an integer.  A value
// that fails to parse is logged and replaced by the default rather than
// halting startup.
func getEnvInt(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("invalid int for %s: %q, using default %d", key, s, def)
		return def
	}
	return n
}
