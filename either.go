// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"fmt"
	"iter"
)

// Either represents a value that is either Left or Right.
//
// An Either holds exactly one non-nil value. It is immutable: every
// combinator returns a new Either, or the receiver itself when it has
// nothing to change.
// The zero Either is not valid; construct one with [Left] or [Right].
//
//stability:snapshot BETA
type Either[L, R any] struct {
	slot  uint8
	left  L
	right R
}

// Left creates a Left value.
// Panics with [ErrValueMissing] if v is nil.
func Left[L, R any](v L) Either[L, R] {
	if isAbsent(v) {
		valueMissing("the left value supplied must not be nil")
	}
	return Either[L, R]{slot: slot1, left: v}
}

// Right creates a Right value.
// Panics with [ErrValueMissing] if v is nil.
func Right[L, R any](v R) Either[L, R] {
	if isAbsent(v) {
		valueMissing("the right value supplied must not be nil")
	}
	return Either[L, R]{slot: slot2, right: v}
}

// Slot returns 1 for Left, 2 for Right and 0 for the zero Either.
func (e Either[L, R]) Slot() int { return int(e.slot) }

// Left returns the Left value and true, or zero and false.
func (e Either[L, R]) Left() (L, bool) { return e.left, e.slot == slot1 }

// Right returns the Right value and true, or zero and false.
func (e Either[L, R]) Right() (R, bool) { return e.right, e.slot == slot2 }

// LeftRaw returns the Left value, or the zero L when e is Right.
// Prefer [Either.Left], which cannot confuse a zero value with absence.
func (e Either[L, R]) LeftRaw() L { return e.left }

// RightRaw returns the Right value, or the zero R when e is Left.
// Prefer [Either.Right], which cannot confuse a zero value with absence.
func (e Either[L, R]) RightRaw() R { return e.right }

// HasLeft reports whether e is Left.
func (e Either[L, R]) HasLeft() bool { return e.slot == slot1 }

// HasRight reports whether e is Right.
func (e Either[L, R]) HasRight() bool { return e.slot == slot2 }

// IfLeft calls action with the Left value if e is Left.
// The action is checked for nil even when it would not run.
func (e Either[L, R]) IfLeft(action func(L)) {
	if action == nil {
		argumentNull("the left action provided cannot be nil")
	}
	if e.slot == slot1 {
		action(e.left)
	}
}

// IfRight calls action with the Right value if e is Right.
// The action is checked for nil even when it would not run.
func (e Either[L, R]) IfRight(action func(R)) {
	if action == nil {
		argumentNull("the right action provided cannot be nil")
	}
	if e.slot == slot2 {
		action(e.right)
	}
}

// IfPresent calls exactly one of leftAction or rightAction, selected by the
// occupied slot. Both actions must be non-nil.
func (e Either[L, R]) IfPresent(leftAction func(L), rightAction func(R)) {
	if leftAction == nil {
		argumentNull("the left action provided cannot be nil")
	}
	if rightAction == nil {
		argumentNull("the right action provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		leftAction(e.left)
	case slot2:
		rightAction(e.right)
	default:
		panic(unoccupied())
	}
}

// Swap exchanges the roles of Left and Right.
// Swap is an involution: e.Swap().Swap() == e.
func (e Either[L, R]) Swap() Either[R, L] {
	switch e.slot {
	case slot1:
		return Either[R, L]{slot: slot2, right: e.left}
	case slot2:
		return Either[R, L]{slot: slot1, left: e.right}
	}
	panic(unoccupied())
}

// StreamLeft returns a sequence yielding the Left value once, or nothing.
// Each range over the sequence starts afresh.
func (e Either[L, R]) StreamLeft() iter.Seq[L] {
	return func(yield func(L) bool) {
		if e.slot == slot1 {
			yield(e.left)
		}
	}
}

// StreamRight returns a sequence yielding the Right value once, or nothing.
// Each range over the sequence starts afresh.
func (e Either[L, R]) StreamRight() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.slot == slot2 {
			yield(e.right)
		}
	}
}

// OrLeft returns e if it is Left. Otherwise it returns a Left holding the
// value produced by supplier. The supplier is checked for nil up front but
// only called when needed.
func (e Either[L, R]) OrLeft(supplier func() L) Either[L, R] {
	if supplier == nil {
		argumentNull("the left supplier provided cannot be nil")
	}
	if e.slot == slot1 {
		return e
	}
	return Either[L, R]{slot: slot1, left: checkResult(supplier(), "the left supplier returned nil")}
}

// OrRight returns e if it is Right. Otherwise it returns a Right holding the
// value produced by supplier. The supplier is checked for nil up front but
// only called when needed.
func (e Either[L, R]) OrRight(supplier func() R) Either[L, R] {
	if supplier == nil {
		argumentNull("the right supplier provided cannot be nil")
	}
	if e.slot == slot2 {
		return e
	}
	return Either[L, R]{slot: slot2, right: checkResult(supplier(), "the right supplier returned nil")}
}

// OrElseLeft returns the Left value, or other when e is Right.
// other is returned verbatim and may be nil.
func (e Either[L, R]) OrElseLeft(other L) L {
	if e.slot == slot1 {
		return e.left
	}
	return other
}

// OrElseGetLeft returns the Left value, or the result of supplier when e is
// Right. The supplier must be non-nil even when e is Left.
func (e Either[L, R]) OrElseGetLeft(supplier func() L) L {
	if supplier == nil {
		argumentNull("the left supplier provided cannot be nil")
	}
	if e.slot == slot1 {
		return e.left
	}
	return supplier()
}

// OrElseThrowLeft returns the Left value, or an error wrapping
// [ErrElementNotFound] when e is Right.
func (e Either[L, R]) OrElseThrowLeft() (L, error) {
	if e.slot == slot1 {
		return e.left, nil
	}
	var zero L
	return zero, notPresent("left")
}

// OrElseThrowLeftFunc returns the Left value, or the error produced by
// errSupplier when e is Right.
//
// Unlike the other suppliers, errSupplier is only checked when it is needed:
// a nil errSupplier, or one returning a nil error, panics only when e is Right.
func (e Either[L, R]) OrElseThrowLeftFunc(errSupplier func() error) (L, error) {
	if e.slot == slot1 {
		return e.left, nil
	}
	var zero L
	return zero, supplyError(errSupplier)
}

// OrElseRight returns the Right value, or other when e is Left.
// other is returned verbatim and may be nil.
func (e Either[L, R]) OrElseRight(other R) R {
	if e.slot == slot2 {
		return e.right
	}
	return other
}

// OrElseGetRight returns the Right value, or the result of supplier when e
// is Left. The supplier must be non-nil even when e is Right.
func (e Either[L, R]) OrElseGetRight(supplier func() R) R {
	if supplier == nil {
		argumentNull("the right supplier provided cannot be nil")
	}
	if e.slot == slot2 {
		return e.right
	}
	return supplier()
}

// OrElseThrowRight returns the Right value, or an error wrapping
// [ErrElementNotFound] when e is Left.
func (e Either[L, R]) OrElseThrowRight() (R, error) {
	if e.slot == slot2 {
		return e.right, nil
	}
	var zero R
	return zero, notPresent("right")
}

// OrElseThrowRightFunc returns the Right value, or the error produced by
// errSupplier when e is Left. errSupplier is only checked when it is needed.
func (e Either[L, R]) OrElseThrowRightFunc(errSupplier func() error) (R, error) {
	if e.slot == slot2 {
		return e.right, nil
	}
	var zero R
	return zero, supplyError(errSupplier)
}

// String formats e as Left[v] or Right[v].
func (e Either[L, R]) String() string {
	switch e.slot {
	case slot1:
		return fmt.Sprintf("Left[%v]", e.left)
	case slot2:
		return fmt.Sprintf("Right[%v]", e.right)
	}
	return "Either[]"
}

// MapLeft applies f to the Left value.
// A Right value passes through and f is not called.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapLeft[L, R, V any](e Either[L, R], f func(L) V) Either[V, R] {
	if f == nil {
		argumentNull("the left map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either[V, R]{slot: slot1, left: checkResult(f(e.left), "the left map returned nil")}
	case slot2:
		return Either[V, R]{slot: slot2, right: e.right}
	}
	panic(unoccupied())
}

// MapRight applies f to the Right value.
// A Left value passes through and f is not called.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapRight[L, R, V any](e Either[L, R], f func(R) V) Either[L, V] {
	if f == nil {
		argumentNull("the right map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either[L, V]{slot: slot1, left: e.left}
	case slot2:
		return Either[L, V]{slot: slot2, right: checkResult(f(e.right), "the right map returned nil")}
	}
	panic(unoccupied())
}

// MapAll applies leftMap or rightMap, whichever matches the occupied slot.
// Both functions must be non-nil; the applied one must not return nil.
func MapAll[L, R, VL, VR any](e Either[L, R], leftMap func(L) VL, rightMap func(R) VR) Either[VL, VR] {
	if leftMap == nil {
		argumentNull("the left map provided cannot be nil")
	}
	if rightMap == nil {
		argumentNull("the right map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either[VL, VR]{slot: slot1, left: checkResult(leftMap(e.left), "the left map returned nil")}
	case slot2:
		return Either[VL, VR]{slot: slot2, right: checkResult(rightMap(e.right), "the right map returned nil")}
	}
	panic(unoccupied())
}

// MapTo folds e into a single value by applying leftMap or rightMap.
// Both functions must be non-nil. The result is returned as is and may be nil.
func MapTo[L, R, V any](e Either[L, R], leftMap func(L) V, rightMap func(R) V) V {
	if leftMap == nil {
		argumentNull("the left map provided cannot be nil")
	}
	if rightMap == nil {
		argumentNull("the right map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return leftMap(e.left)
	case slot2:
		return rightMap(e.right)
	}
	panic(unoccupied())
}

// FlatMapLeft sequences a Left value into f. The Either returned by f is
// returned unchanged, whichever slot it occupies.
// A Right value passes through and f is not called.
func FlatMapLeft[L, R, V any](e Either[L, R], f func(L) Either[V, R]) Either[V, R] {
	if f == nil {
		argumentNull("the left flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return checkEither(f(e.left))
	case slot2:
		return Either[V, R]{slot: slot2, right: e.right}
	}
	panic(unoccupied())
}

// FlatMapRight sequences a Right value into f. The Either returned by f is
// returned unchanged, whichever slot it occupies.
// A Left value passes through and f is not called.
func FlatMapRight[L, R, V any](e Either[L, R], f func(R) Either[L, V]) Either[L, V] {
	if f == nil {
		argumentNull("the right flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either[L, V]{slot: slot1, left: e.left}
	case slot2:
		return checkEither(f(e.right))
	}
	panic(unoccupied())
}

// FlatMapAll sequences e into leftMap or rightMap, whichever matches the
// occupied slot. Both functions must be non-nil.
func FlatMapAll[L, R, VL, VR any](e Either[L, R], leftMap func(L) Either[VL, VR], rightMap func(R) Either[VL, VR]) Either[VL, VR] {
	if leftMap == nil {
		argumentNull("the left flat map provided cannot be nil")
	}
	if rightMap == nil {
		argumentNull("the right flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return checkEither(leftMap(e.left))
	case slot2:
		return checkEither(rightMap(e.right))
	}
	panic(unoccupied())
}

// checkEither rejects a zero Either returned from a flat map.
func checkEither[L, R any](e Either[L, R]) Either[L, R] {
	if e.slot == noSlot {
		argumentNull("the returned either cannot be nil")
	}
	return e
}

// supplyError runs an error supplier on the not-present path.
func supplyError(errSupplier func() error) error {
	if errSupplier == nil {
		argumentNull("the error supplier provided cannot be nil")
	}
	err := errSupplier()
	if err == nil {
		argumentNull("the error supplier returned nil")
	}
	return err
}
