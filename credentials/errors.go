package credentials

import (
	"fmt"
	"strings"
)

// MissingError lists required credential variables that were not provided.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required credentials: %s (set them in the environment)", strings.Join(e.Names, ", "))
}
