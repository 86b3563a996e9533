// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"fmt"
	"iter"
)

// Either3 holds exactly one non-nil value of one of 3 types, occupying the
// first, second or third slot.
//
// Either3 mirrors [Either] slot for slot: every combinator documented there
// exists here once per slot, with the same contract.
// The zero Either3 is not valid.
//
//stability:snapshot IN_DEVELOPMENT
type Either3[T1, T2, T3 any] struct {
	slot   uint8
	first  T1
	second T2
	third  T3
}

// First3 creates Either3 occupying the first slot.
// Panics with [ErrValueMissing] if v is nil.
func First3[T1, T2, T3 any](v T1) Either3[T1, T2, T3] {
	if isAbsent(v) {
		valueMissing("the first value supplied must not be nil")
	}
	return Either3[T1, T2, T3]{slot: slot1, first: v}
}

// Second3 creates Either3 occupying the second slot.
// Panics with [ErrValueMissing] if v is nil.
func Second3[T1, T2, T3 any](v T2) Either3[T1, T2, T3] {
	if isAbsent(v) {
		valueMissing("the second value supplied must not be nil")
	}
	return Either3[T1, T2, T3]{slot: slot2, second: v}
}

// Third3 creates Either3 occupying the third slot.
// Panics with [ErrValueMissing] if v is nil.
func Third3[T1, T2, T3 any](v T3) Either3[T1, T2, T3] {
	if isAbsent(v) {
		valueMissing("the third value supplied must not be nil")
	}
	return Either3[T1, T2, T3]{slot: slot3, third: v}
}

// Slot returns the 1-based index of the occupied slot, or 0 for the zero Either3.
func (e Either3[T1, T2, T3]) Slot() int { return int(e.slot) }

// First returns the first value and true, or zero and false.
func (e Either3[T1, T2, T3]) First() (T1, bool) { return e.first, e.slot == slot1 }

// Second returns the second value and true, or zero and false.
func (e Either3[T1, T2, T3]) Second() (T2, bool) { return e.second, e.slot == slot2 }

// Third returns the third value and true, or zero and false.
func (e Either3[T1, T2, T3]) Third() (T3, bool) { return e.third, e.slot == slot3 }

// FirstRaw returns the first value or the zero T1.
func (e Either3[T1, T2, T3]) FirstRaw() T1 { return e.first }

// SecondRaw returns the second value or the zero T2.
func (e Either3[T1, T2, T3]) SecondRaw() T2 { return e.second }

// ThirdRaw returns the third value or the zero T3.
func (e Either3[T1, T2, T3]) ThirdRaw() T3 { return e.third }

// HasFirst reports whether e occupies the first slot.
func (e Either3[T1, T2, T3]) HasFirst() bool { return e.slot == slot1 }

// HasSecond reports whether e occupies the second slot.
func (e Either3[T1, T2, T3]) HasSecond() bool { return e.slot == slot2 }

// HasThird reports whether e occupies the third slot.
func (e Either3[T1, T2, T3]) HasThird() bool { return e.slot == slot3 }

// IfFirst calls action with the first value if present.
func (e Either3[T1, T2, T3]) IfFirst(action func(T1)) {
	if action == nil {
		argumentNull("the first action provided cannot be nil")
	}
	if e.slot == slot1 {
		action(e.first)
	}
}

// IfSecond calls action with the second value if present.
func (e Either3[T1, T2, T3]) IfSecond(action func(T2)) {
	if action == nil {
		argumentNull("the second action provided cannot be nil")
	}
	if e.slot == slot2 {
		action(e.second)
	}
}

// IfThird calls action with the third value if present.
func (e Either3[T1, T2, T3]) IfThird(action func(T3)) {
	if action == nil {
		argumentNull("the third action provided cannot be nil")
	}
	if e.slot == slot3 {
		action(e.third)
	}
}

// IfPresent calls the action matching the occupied slot.
// All actions must be non-nil.
func (e Either3[T1, T2, T3]) IfPresent(firstAction func(T1), secondAction func(T2), thirdAction func(T3)) {
	if firstAction == nil {
		argumentNull("the first action provided cannot be nil")
	}
	if secondAction == nil {
		argumentNull("the second action provided cannot be nil")
	}
	if thirdAction == nil {
		argumentNull("the third action provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		firstAction(e.first)
	case slot2:
		secondAction(e.second)
	case slot3:
		thirdAction(e.third)
	default:
		panic(unoccupied())
	}
}

// SwapFirst exchanges the first and second slots. Other slots pass through.
func (e Either3[T1, T2, T3]) SwapFirst() Either3[T2, T1, T3] {
	switch e.slot {
	case slot1:
		return Either3[T2, T1, T3]{slot: slot2, second: e.first}
	case slot2:
		return Either3[T2, T1, T3]{slot: slot1, first: e.second}
	case slot3:
		return Either3[T2, T1, T3]{slot: slot3, third: e.third}
	}
	panic(unoccupied())
}

// SwapSecond exchanges the second and third slots. Other slots pass through.
func (e Either3[T1, T2, T3]) SwapSecond() Either3[T1, T3, T2] {
	switch e.slot {
	case slot1:
		return Either3[T1, T3, T2]{slot: slot1, first: e.first}
	case slot2:
		return Either3[T1, T3, T2]{slot: slot3, third: e.second}
	case slot3:
		return Either3[T1, T3, T2]{slot: slot2, second: e.third}
	}
	panic(unoccupied())
}

// StreamFirst returns a sequence yielding the first value once, or nothing.
func (e Either3[T1, T2, T3]) StreamFirst() iter.Seq[T1] {
	return func(yield func(T1) bool) {
		if e.slot == slot1 {
			yield(e.first)
		}
	}
}

// StreamSecond returns a sequence yielding the second value once, or nothing.
func (e Either3[T1, T2, T3]) StreamSecond() iter.Seq[T2] {
	return func(yield func(T2) bool) {
		if e.slot == slot2 {
			yield(e.second)
		}
	}
}

// StreamThird returns a sequence yielding the third value once, or nothing.
func (e Either3[T1, T2, T3]) StreamThird() iter.Seq[T3] {
	return func(yield func(T3) bool) {
		if e.slot == slot3 {
			yield(e.third)
		}
	}
}

// OrFirst returns e if the first slot is occupied, otherwise Either3
// holding the value produced by supplier.
func (e Either3[T1, T2, T3]) OrFirst(supplier func() T1) Either3[T1, T2, T3] {
	if supplier == nil {
		argumentNull("the first supplier provided cannot be nil")
	}
	if e.slot == slot1 {
		return e
	}
	return Either3[T1, T2, T3]{slot: slot1, first: checkResult(supplier(), "the first supplier returned nil")}
}

// OrSecond returns e if the second slot is occupied, otherwise Either3
// holding the value produced by supplier.
func (e Either3[T1, T2, T3]) OrSecond(supplier func() T2) Either3[T1, T2, T3] {
	if supplier == nil {
		argumentNull("the second supplier provided cannot be nil")
	}
	if e.slot == slot2 {
		return e
	}
	return Either3[T1, T2, T3]{slot: slot2, second: checkResult(supplier(), "the second supplier returned nil")}
}

// OrThird returns e if the third slot is occupied, otherwise Either3
// holding the value produced by supplier.
func (e Either3[T1, T2, T3]) OrThird(supplier func() T3) Either3[T1, T2, T3] {
	if supplier == nil {
		argumentNull("the third supplier provided cannot be nil")
	}
	if e.slot == slot3 {
		return e
	}
	return Either3[T1, T2, T3]{slot: slot3, third: checkResult(supplier(), "the third supplier returned nil")}
}

// OrElseFirst returns the first value, or other verbatim.
func (e Either3[T1, T2, T3]) OrElseFirst(other T1) T1 {
	if e.slot == slot1 {
		return e.first
	}
	return other
}

// OrElseGetFirst returns the first value, or the result of supplier.
// The supplier must be non-nil even when it is not called.
func (e Either3[T1, T2, T3]) OrElseGetFirst(supplier func() T1) T1 {
	if supplier == nil {
		argumentNull("the first supplier provided cannot be nil")
	}
	if e.slot == slot1 {
		return e.first
	}
	return supplier()
}

// OrElseThrowFirst returns the first value, or an error wrapping [ErrElementNotFound].
func (e Either3[T1, T2, T3]) OrElseThrowFirst() (T1, error) {
	if e.slot == slot1 {
		return e.first, nil
	}
	var zero T1
	return zero, notPresent("first")
}

// OrElseThrowFirstFunc returns the first value, or the error produced by
// errSupplier. errSupplier is only checked when it is needed.
func (e Either3[T1, T2, T3]) OrElseThrowFirstFunc(errSupplier func() error) (T1, error) {
	if e.slot == slot1 {
		return e.first, nil
	}
	var zero T1
	return zero, supplyError(errSupplier)
}

// OrElseSecond returns the second value, or other verbatim.
func (e Either3[T1, T2, T3]) OrElseSecond(other T2) T2 {
	if e.slot == slot2 {
		return e.second
	}
	return other
}

// OrElseGetSecond returns the second value, or the result of supplier.
// The supplier must be non-nil even when it is not called.
func (e Either3[T1, T2, T3]) OrElseGetSecond(supplier func() T2) T2 {
	if supplier == nil {
		argumentNull("the second supplier provided cannot be nil")
	}
	if e.slot == slot2 {
		return e.second
	}
	return supplier()
}

// OrElseThrowSecond returns the second value, or an error wrapping [ErrElementNotFound].
func (e Either3[T1, T2, T3]) OrElseThrowSecond() (T2, error) {
	if e.slot == slot2 {
		return e.second, nil
	}
	var zero T2
	return zero, notPresent("second")
}

// OrElseThrowSecondFunc returns the second value, or the error produced by
// errSupplier. errSupplier is only checked when it is needed.
func (e Either3[T1, T2, T3]) OrElseThrowSecondFunc(errSupplier func() error) (T2, error) {
	if e.slot == slot2 {
		return e.second, nil
	}
	var zero T2
	return zero, supplyError(errSupplier)
}

// OrElseThird returns the third value, or other verbatim.
func (e Either3[T1, T2, T3]) OrElseThird(other T3) T3 {
	if e.slot == slot3 {
		return e.third
	}
	return other
}

// OrElseGetThird returns the third value, or the result of supplier.
// The supplier must be non-nil even when it is not called.
func (e Either3[T1, T2, T3]) OrElseGetThird(supplier func() T3) T3 {
	if supplier == nil {
		argumentNull("the third supplier provided cannot be nil")
	}
	if e.slot == slot3 {
		return e.third
	}
	return supplier()
}

// OrElseThrowThird returns the third value, or an error wrapping [ErrElementNotFound].
func (e Either3[T1, T2, T3]) OrElseThrowThird() (T3, error) {
	if e.slot == slot3 {
		return e.third, nil
	}
	var zero T3
	return zero, notPresent("third")
}

// OrElseThrowThirdFunc returns the third value, or the error produced by
// errSupplier. errSupplier is only checked when it is needed.
func (e Either3[T1, T2, T3]) OrElseThrowThirdFunc(errSupplier func() error) (T3, error) {
	if e.slot == slot3 {
		return e.third, nil
	}
	var zero T3
	return zero, supplyError(errSupplier)
}

// String formats e as First[v], Second[v] and so on.
func (e Either3[T1, T2, T3]) String() string {
	switch e.slot {
	case slot1:
		return fmt.Sprintf("First[%v]", e.first)
	case slot2:
		return fmt.Sprintf("Second[%v]", e.second)
	case slot3:
		return fmt.Sprintf("Third[%v]", e.third)
	}
	return "Either3[]"
}

// MapFirst3 applies f to the first value; other slots pass through.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapFirst3[T1, T2, T3, V any](e Either3[T1, T2, T3], f func(T1) V) Either3[V, T2, T3] {
	if f == nil {
		argumentNull("the first map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either3[V, T2, T3]{slot: slot1, first: checkResult(f(e.first), "the first map returned nil")}
	case slot2:
		return Either3[V, T2, T3]{slot: slot2, second: e.second}
	case slot3:
		return Either3[V, T2, T3]{slot: slot3, third: e.third}
	}
	panic(unoccupied())
}

// MapSecond3 applies f to the second value; other slots pass through.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapSecond3[T1, T2, T3, V any](e Either3[T1, T2, T3], f func(T2) V) Either3[T1, V, T3] {
	if f == nil {
		argumentNull("the second map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either3[T1, V, T3]{slot: slot1, first: e.first}
	case slot2:
		return Either3[T1, V, T3]{slot: slot2, second: checkResult(f(e.second), "the second map returned nil")}
	case slot3:
		return Either3[T1, V, T3]{slot: slot3, third: e.third}
	}
	panic(unoccupied())
}

// MapThird3 applies f to the third value; other slots pass through.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapThird3[T1, T2, T3, V any](e Either3[T1, T2, T3], f func(T3) V) Either3[T1, T2, V] {
	if f == nil {
		argumentNull("the third map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either3[T1, T2, V]{slot: slot1, first: e.first}
	case slot2:
		return Either3[T1, T2, V]{slot: slot2, second: e.second}
	case slot3:
		return Either3[T1, T2, V]{slot: slot3, third: checkResult(f(e.third), "the third map returned nil")}
	}
	panic(unoccupied())
}

// MapAll3 applies the map matching the occupied slot.
// All maps must be non-nil; the applied one must not return nil.
func MapAll3[T1, T2, T3, V1, V2, V3 any](e Either3[T1, T2, T3], firstMap func(T1) V1, secondMap func(T2) V2, thirdMap func(T3) V3) Either3[V1, V2, V3] {
	if firstMap == nil {
		argumentNull("the first map provided cannot be nil")
	}
	if secondMap == nil {
		argumentNull("the second map provided cannot be nil")
	}
	if thirdMap == nil {
		argumentNull("the third map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either3[V1, V2, V3]{slot: slot1, first: checkResult(firstMap(e.first), "the first map returned nil")}
	case slot2:
		return Either3[V1, V2, V3]{slot: slot2, second: checkResult(secondMap(e.second), "the second map returned nil")}
	case slot3:
		return Either3[V1, V2, V3]{slot: slot3, third: checkResult(thirdMap(e.third), "the third map returned nil")}
	}
	panic(unoccupied())
}

// MapTo3 folds e into a V using the map matching the occupied slot.
// All maps must be non-nil. The result may be nil.
func MapTo3[T1, T2, T3, V any](e Either3[T1, T2, T3], firstMap func(T1) V, secondMap func(T2) V, thirdMap func(T3) V) V {
	if firstMap == nil {
		argumentNull("the first map provided cannot be nil")
	}
	if secondMap == nil {
		argumentNull("the second map provided cannot be nil")
	}
	if thirdMap == nil {
		argumentNull("the third map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return firstMap(e.first)
	case slot2:
		return secondMap(e.second)
	case slot3:
		return thirdMap(e.third)
	}
	panic(unoccupied())
}

// FlatMapFirst3 sequences the first value into f and returns f's result
// as is. Other slots pass through without calling f.
func FlatMapFirst3[T1, T2, T3, V any](e Either3[T1, T2, T3], f func(T1) Either3[V, T2, T3]) Either3[V, T2, T3] {
	if f == nil {
		argumentNull("the first flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return checkEither3(f(e.first))
	case slot2:
		return Either3[V, T2, T3]{slot: slot2, second: e.second}
	case slot3:
		return Either3[V, T2, T3]{slot: slot3, third: e.third}
	}
	panic(unoccupied())
}

// FlatMapSecond3 sequences the second value into f and returns f's result
// as is. Other slots pass through without calling f.
func FlatMapSecond3[T1, T2, T3, V any](e Either3[T1, T2, T3], f func(T2) Either3[T1, V, T3]) Either3[T1, V, T3] {
	if f == nil {
		argumentNull("the second flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either3[T1, V, T3]{slot: slot1, first: e.first}
	case slot2:
		return checkEither3(f(e.second))
	case slot3:
		return Either3[T1, V, T3]{slot: slot3, third: e.third}
	}
	panic(unoccupied())
}

// FlatMapThird3 sequences the third value into f and returns f's result
// as is. Other slots pass through without calling f.
func FlatMapThird3[T1, T2, T3, V any](e Either3[T1, T2, T3], f func(T3) Either3[T1, T2, V]) Either3[T1, T2, V] {
	if f == nil {
		argumentNull("the third flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either3[T1, T2, V]{slot: slot1, first: e.first}
	case slot2:
		return Either3[T1, T2, V]{slot: slot2, second: e.second}
	case slot3:
		return checkEither3(f(e.third))
	}
	panic(unoccupied())
}

// FlatMapAll3 sequences e into the flat map matching the occupied slot.
// All flat maps must be non-nil.
func FlatMapAll3[T1, T2, T3, V1, V2, V3 any](e Either3[T1, T2, T3], firstMap func(T1) Either3[V1, V2, V3], secondMap func(T2) Either3[V1, V2, V3], thirdMap func(T3) Either3[V1, V2, V3]) Either3[V1, V2, V3] {
	if firstMap == nil {
		argumentNull("the first flat map provided cannot be nil")
	}
	if secondMap == nil {
		argumentNull("the second flat map provided cannot be nil")
	}
	if thirdMap == nil {
		argumentNull("the third flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return checkEither3(firstMap(e.first))
	case slot2:
		return checkEither3(secondMap(e.second))
	case slot3:
		return checkEither3(thirdMap(e.third))
	}
	panic(unoccupied())
}

func checkEither3[T1, T2, T3 any](e Either3[T1, T2, T3]) Either3[T1, T2, T3] {
	if e.slot == noSlot {
		argumentNull("the returned either cannot be nil")
	}
	return e
}
