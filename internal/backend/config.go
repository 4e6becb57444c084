package backend

import (
	"fmt"

	"expensed/internal/config"
)

// FromAppConfig maps the application config to a backend config. When the
// backend is not named explicitly, the presence of Firestore credentials
// selects the durable variant; otherwise the process runs in-memory.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	kind := Kind(appConfig.StorageBackend)
	if appConfig.StorageBackend == "" {
		if appConfig.FirebaseProjectID != "" {
			kind = KindFirebase
		} else {
			kind = KindMemory
		}
	}
	if !kind.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.StorageBackend)
	}

	return Config{
		Type: kind,

		FirebaseProjectID:       appConfig.FirebaseProjectID,
		FirebaseCredentialsFile: appConfig.FirebaseCredentialsFile,
		FirebaseCredentialsJSON: appConfig.FirebaseCredentialsJSON,

		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

// Validate checks the backend configuration for the selected variant.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case KindFirebase:
		if c.FirebaseProjectID == "" {
			return fmt.Errorf("Firebase project ID is required for the firebase backend")
		}
	case KindSQLite:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for the sqlite backend")
		}
	case KindMemory:
		// Nothing to configure.
	}

	return nil
}
