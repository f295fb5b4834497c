// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package quiz

import (
	"errors"
	"fmt"
	"strconv"
)

// NotFoundError is returned when an index does not resolve to an entry,
// either because it is out of range or because it is not an integer at all.
type NotFoundError struct {
	Index string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no quiz with index %q", e.Index)
}

// IsNotFound reports whether err is, or wraps, a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func notFound(index int) *NotFoundError {
	return &NotFoundError{Index: strconv.Itoa(index)}
}
