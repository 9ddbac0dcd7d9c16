package models

import "fmt"

// ValidationError describes one rejected field of a raw policy
// configuration. Validation errors only occur at configuration save/load
// time; evaluations never run against an invalid PolicyConfig.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
