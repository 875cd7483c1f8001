package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func envOrDefault(key, defaultValue string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val != "" {
		return val
	}
	return defaultValue
}

// ErrInvalidNumber is returned when a numeric variable is set but is not a positive integer.
var ErrInvalidNumber = errors.New("must be a positive integer")

// intEnv returns defaultValue when key is unset. A set value that is not a
// positive integer yields defaultValue and an error naming the variable.
func intEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue, fmt.Errorf("%s %w, got %q", key, ErrInvalidNumber, raw)
	}
	return val, nil
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}
