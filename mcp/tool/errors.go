package tool

import (
	"errors"
	"fmt"
)

// ErrMissingArgument is returned when a required constructor argument is empty
var ErrMissingArgument = errors.New("missing argument")

func missingArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}
