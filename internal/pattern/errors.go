package pattern

import "fmt"

// NotFoundError is returned when a caller names an unknown pattern id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pattern_not_found: %s", e.ID)
}
