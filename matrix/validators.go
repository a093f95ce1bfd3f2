// SPDX-License-Identifier: MIT
// Package matrix: shape validators shared by the kernels.

package matrix

import "reflect"

// ValidateNotNil returns ErrNilMatrix for a nil interface or a typed nil pointer.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare checks m is non-nil and Rows() == Cols().
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}
