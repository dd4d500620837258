package env

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var Env map[string]string

var ErrNoEnvFile = errors.New("no .env file found in any of the expected locations")

// SetupEnvFile loads the first .env file found. A missing file is not fatal for
// a command line tool, the process environment is used instead.
func SetupEnvFile() error {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/razorsync to project root
		"../../../.env", // Fallback for deeper nesting
	}

	for _, envFile := range envFiles {
		values, err := godotenv.Read(envFile)
		if err == nil {
			Env = values
			return nil
		}
	}

	Env = map[string]string{}
	return ErrNoEnvFile
}

// Environ merges the values loaded from the .env file with the process
// environment. Exported variables win over the file unless they are empty.
func Environ() map[string]string {
	merged := make(map[string]string, len(Env))
	for k, v := range Env {
		merged[k] = v
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && v != "" {
			merged[k] = v
		}
	}
	return merged
}
