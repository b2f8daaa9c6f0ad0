package internal

import (
	"fmt"
	"os"
	"strconv"
)

// EnvString returns the value of ICON_<name>, or def when unset or empty.
func EnvString(name, def string) string {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		return v
	}
	return def
}

// EnvInt returns ICON_<name> parsed as an integer, or def when unset.
func EnvInt(name string, def int) (int, error) {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s%s: %w", EnvPrefix, name, err)
	}
	return n, nil
}
