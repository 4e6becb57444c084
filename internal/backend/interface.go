package backend

import (
	"expensed/internal/store"
)

// Kind identifies a store variant. Its string form is what the health
// endpoint reports; the Firestore variant reports as "firebase".
type Kind string

const (
	KindFirebase Kind = "firebase"
	KindSQLite   Kind = "sqlite"
	KindMemory   Kind = "memory"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindFirebase, KindSQLite, KindMemory:
		return true
	default:
		return false
	}
}

// CleanupFunc releases the resources of a store variant.
type CleanupFunc func() error

// Result is the outcome of opening a backend: the one store instance the
// process uses, its kind, and an optional cleanup.
type Result struct {
	Store   store.Store
	Kind    Kind
	Cleanup CleanupFunc
}

// Config holds everything the factory needs to open a backend. Callers build
// it from explicit configuration; the factory never reads ambient state.
type Config struct {
	Type Kind

	// Firestore
	FirebaseProjectID       string
	FirebaseCredentialsFile string
	FirebaseCredentialsJSON string

	// SQLite
	SQLiteDBPath string
}
