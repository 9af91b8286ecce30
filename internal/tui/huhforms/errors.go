package huhforms

import (
	"errors"
	"strings"

	"github.com/thenoetrevino/huddle/internal/models"
)

// inline drops the category prefix of a service error so the message fits
// under the field it belongs to
func inline(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, category := range []error{models.ErrValidation, models.ErrConflict} {
		msg = strings.TrimPrefix(msg, category.Error()+": ")
	}
	return errors.New(msg)
}

// trimmed runs validate on the input without surrounding blanks, the way the
// services see it
func trimmed(validate func(string) error) func(string) error {
	return func(s string) error {
		return inline(validate(strings.TrimSpace(s)))
	}
}
