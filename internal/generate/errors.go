package generate

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned when the model produced zero questions.
// Callers treat it like any other recoverable generation failure.
var ErrEmptyBatch = errors.New("generator returned an empty batch")

// MissingParamError identifies which required request field was absent.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing or invalid parameter: %s", e.Param)
}

func errMissing(param string) error {
	return &MissingParamError{Param: param}
}
