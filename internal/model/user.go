package model

// User represents a registered account held by the credential store.
// Records are immutable once created; there is no account management in
// this service and users are never deleted.
//
// Fields:
//  ID           – monotonic identifier assigned by the store at registration.
//  Email        – stored lowercase; unique case-insensitively.
//  PasswordHash – bcrypt digest of the password; the plaintext is never kept.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
}
