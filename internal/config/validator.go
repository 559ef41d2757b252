package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
// before any sync run or server start
var RequiredEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateSyncEnv checks the variables the batch sync additionally requires
func ValidateSyncEnv() error {
	if err := ValidateEnv(); err != nil {
		return err
	}

	if os.Getenv("DELIVERY_LOG_PATH") == "" {
		return fmt.Errorf("DELIVERY_LOG_PATH must point at the exported delivery-log CSV")
	}

	return nil
}
