package core

import (
	"fmt"
	"strings"
)

// ValidateKey rejects keys that are empty or could be interpreted as paths
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
