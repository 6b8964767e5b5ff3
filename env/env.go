package env

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var dVal sync.Map

// RegisterDefault sets the value GetVar falls back to when
// the variable is not present in the process environment.
func RegisterDefault(key, defaultValue string) {
	dVal.Store(key, defaultValue)
}

func GetVar(key string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		if v, _ := dVal.Load(key); v != nil {
			return v.(string)
		}
		return ""
	}
	return value
}

// Load reads the given dotenv files into the process environment.
// Variables already set are not overwritten, and missing files are
// skipped so a bare environment still works.
func Load(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "failed to load env file %v", f)
		}
	}
	return nil
}

// Dev returns true if running in development mode
func Dev() bool {
	return GetVar("GOPLAID_MODE") == "DEV"
}

// Stg returns true if running in staging mode
func Stg() bool {
	return GetVar("GOPLAID_MODE") == "STG"
}

// Prod returns true if running in production mode
func Prod() bool {
	return GetVar("GOPLAID_MODE") == "PROD"
}
