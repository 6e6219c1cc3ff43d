package storage

import (
	"fmt"
	"strings"
)

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if len(key) > 256 {
		return fmt.Errorf("%w: key longer than 256 bytes", ErrInvalidKey)
	}
	return nil
}
