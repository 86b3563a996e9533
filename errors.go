// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrArgumentNull reports a nil callback, supplier or callback result.
	ErrArgumentNull = errors.New("either: argument is nil")

	// ErrValueMissing reports construction with a nil value, or dispatch on
	// a zero container that was never constructed.
	ErrValueMissing = errors.New("either: value is nil")

	// ErrElementNotFound is returned by the OrElseThrow accessors when the
	// requested slot is not occupied.
	ErrElementNotFound = errors.New("either: element not found")
)

// ContractError is the panic value for contract violations.
// Kind is ErrArgumentNull or ErrValueMissing.
type ContractError struct {
	Kind error
	Msg  string
}

func (e *ContractError) Error() string { return e.Kind.Error() + ": " + e.Msg }

func (e *ContractError) Unwrap() error { return e.Kind }

func argumentNull(msg string) {
	panic(&ContractError{Kind: ErrArgumentNull, Msg: msg})
}

func valueMissing(msg string) {
	panic(&ContractError{Kind: ErrValueMissing, Msg: msg})
}

// unoccupied is raised when a zero container reaches a dispatch.
func unoccupied() *ContractError {
	return &ContractError{Kind: ErrValueMissing, Msg: "container has no occupied slot"}
}

func notPresent(slot string) error {
	return fmt.Errorf("%w: %s value not present", ErrElementNotFound, slot)
}

// checkResult panics with ErrArgumentNull if v is absent and returns v otherwise.
func checkResult[T any](v T, msg string) T {
	if isAbsent(v) {
		argumentNull(msg)
	}
	return v
}
