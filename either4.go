// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"fmt"
	"iter"
)

// Either4 holds exactly one non-nil value of one of 4 types, occupying the
// first, second, third or fourth slot.
//
// Either4 mirrors [Either] slot for slot: every combinator documented there
// exists here once per slot, with the same contract.
// The zero Either4 is not valid.
//
//stability:snapshot IN_DEVELOPMENT
type Either4[T1, T2, T3, T4 any] struct {
	slot   uint8
	first  T1
	second T2
	third  T3
	fourth T4
}

// First4 creates Either4 occupying the first slot.
// Panics with [ErrValueMissing] if v is nil.
func First4[T1, T2, T3, T4 any](v T1) Either4[T1, T2, T3, T4] {
	if isAbsent(v) {
		valueMissing("the first value supplied must not be nil")
	}
	return Either4[T1, T2, T3, T4]{slot: slot1, first: v}
}

// Second4 creates Either4 occupying the second slot.
// Panics with [ErrValueMissing] if v is nil.
func Second4[T1, T2, T3, T4 any](v T2) Either4[T1, T2, T3, T4] {
	if isAbsent(v) {
		valueMissing("the second value supplied must not be nil")
	}
	return Either4[T1, T2, T3, T4]{slot: slot2, second: v}
}

// Third4 creates Either4 occupying the third slot.
// Panics with [ErrValueMissing] if v is nil.
func Third4[T1, T2, T3, T4 any](v T3) Either4[T1, T2, T3, T4] {
	if isAbsent(v) {
		valueMissing("the third value supplied must not be nil")
	}
	return Either4[T1, T2, T3, T4]{slot: slot3, third: v}
}

// Fourth4 creates Either4 occupying the fourth slot.
// Panics with [ErrValueMissing] if v is nil.
func Fourth4[T1, T2, T3, T4 any](v T4) Either4[T1, T2, T3, T4] {
	if isAbsent(v) {
		valueMissing("the fourth value supplied must not be nil")
	}
	return Either4[T1, T2, T3, T4]{slot: slot4, fourth: v}
}

// Slot returns the 1-based index of the occupied slot, or 0 for the zero Either4.
func (e Either4[T1, T2, T3, T4]) Slot() int { return int(e.slot) }

// First returns the first value and true, or zero and false.
func (e Either4[T1, T2, T3, T4]) First() (T1, bool) { return e.first, e.slot == slot1 }

// Second returns the second value and true, or zero and false.
func (e Either4[T1, T2, T3, T4]) Second() (T2, bool) { return e.second, e.slot == slot2 }

// Third returns the third value and true, or zero and false.
func (e Either4[T1, T2, T3, T4]) Third() (T3, bool) { return e.third, e.slot == slot3 }

// Fourth returns the fourth value and true, or zero and false.
func (e Either4[T1, T2, T3, T4]) Fourth() (T4, bool) { return e.fourth, e.slot == slot4 }

// FirstRaw returns the first value or the zero T1.
func (e Either4[T1, T2, T3, T4]) FirstRaw() T1 { return e.first }

// SecondRaw returns the second value or the zero T2.
func (e Either4[T1, T2, T3, T4]) SecondRaw() T2 { return e.second }

// ThirdRaw returns the third value or the zero T3.
func (e Either4[T1, T2, T3, T4]) ThirdRaw() T3 { return e.third }

// FourthRaw returns the fourth value or the zero T4.
func (e Either4[T1, T2, T3, T4]) FourthRaw() T4 { return e.fourth }

// HasFirst reports whether e occupies the first slot.
func (e Either4[T1, T2, T3, T4]) HasFirst() bool { return e.slot == slot1 }

// HasSecond reports whether e occupies the second slot.
func (e Either4[T1, T2, T3, T4]) HasSecond() bool { return e.slot == slot2 }

// HasThird reports whether e occupies the third slot.
func (e Either4[T1, T2, T3, T4]) HasThird() bool { return e.slot == slot3 }

// HasFourth reports whether e occupies the fourth slot.
func (e Either4[T1, T2, T3, T4]) HasFourth() bool { return e.slot == slot4 }

// IfFirst calls action with the first value if present.
func (e Either4[T1, T2, T3, T4]) IfFirst(action func(T1)) {
	if action == nil {
		argumentNull("the first action provided cannot be nil")
	}
	if e.slot == slot1 {
		action(e.first)
	}
}

// IfSecond calls action with the second value if present.
func (e Either4[T1, T2, T3, T4]) IfSecond(action func(T2)) {
	if action == nil {
		argumentNull("the second action provided cannot be nil")
	}
	if e.slot == slot2 {
		action(e.second)
	}
}

// IfThird calls action with the third value if present.
func (e Either4[T1, T2, T3, T4]) IfThird(action func(T3)) {
	if action == nil {
		argumentNull("the third action provided cannot be nil")
	}
	if e.slot == slot3 {
		action(e.third)
	}
}

// IfFourth calls action with the fourth value if present.
func (e Either4[T1, T2, T3, T4]) IfFourth(action func(T4)) {
	if action == nil {
		argumentNull("the fourth action provided cannot be nil")
	}
	if e.slot == slot4 {
		action(e.fourth)
	}
}

// IfPresent calls the action matching the occupied slot.
// All actions must be non-nil.
func (e Either4[T1, T2, T3, T4]) IfPresent(firstAction func(T1), secondAction func(T2), thirdAction func(T3), fourthAction func(T4)) {
	if firstAction == nil {
		argumentNull("the first action provided cannot be nil")
	}
	if secondAction == nil {
		argumentNull("the second action provided cannot be nil")
	}
	if thirdAction == nil {
		argumentNull("the third action provided cannot be nil")
	}
	if fourthAction == nil {
		argumentNull("the fourth action provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		firstAction(e.first)
	case slot2:
		secondAction(e.second)
	case slot3:
		thirdAction(e.third)
	case slot4:
		fourthAction(e.fourth)
	default:
		panic(unoccupied())
	}
}

// SwapFirst exchanges the first and second slots. Other slots pass through.
func (e Either4[T1, T2, T3, T4]) SwapFirst() Either4[T2, T1, T3, T4] {
	switch e.slot {
	case slot1:
		return Either4[T2, T1, T3, T4]{slot: slot2, second: e.first}
	case slot2:
		return Either4[T2, T1, T3, T4]{slot: slot1, first: e.second}
	case slot3:
		return Either4[T2, T1, T3, T4]{slot: slot3, third: e.third}
	case slot4:
		return Either4[T2, T1, T3, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// SwapSecond exchanges the second and third slots. Other slots pass through.
func (e Either4[T1, T2, T3, T4]) SwapSecond() Either4[T1, T3, T2, T4] {
	switch e.slot {
	case slot1:
		return Either4[T1, T3, T2, T4]{slot: slot1, first: e.first}
	case slot2:
		return Either4[T1, T3, T2, T4]{slot: slot3, third: e.second}
	case slot3:
		return Either4[T1, T3, T2, T4]{slot: slot2, second: e.third}
	case slot4:
		return Either4[T1, T3, T2, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// SwapThird exchanges the third and fourth slots. Other slots pass through.
func (e Either4[T1, T2, T3, T4]) SwapThird() Either4[T1, T2, T4, T3] {
	switch e.slot {
	case slot1:
		return Either4[T1, T2, T4, T3]{slot: slot1, first: e.first}
	case slot2:
		return Either4[T1, T2, T4, T3]{slot: slot2, second: e.second}
	case slot3:
		return Either4[T1, T2, T4, T3]{slot: slot4, fourth: e.third}
	case slot4:
		return Either4[T1, T2, T4, T3]{slot: slot3, third: e.fourth}
	}
	panic(unoccupied())
}

// StreamFirst returns a sequence yielding the first value once, or nothing.
func (e Either4[T1, T2, T3, T4]) StreamFirst() iter.Seq[T1] {
	return func(yield func(T1) bool) {
		if e.slot == slot1 {
			yield(e.first)
		}
	}
}

// StreamSecond returns a sequence yielding the second value once, or nothing.
func (e Either4[T1, T2, T3, T4]) StreamSecond() iter.Seq[T2] {
	return func(yield func(T2) bool) {
		if e.slot == slot2 {
			yield(e.second)
		}
	}
}

// StreamThird returns a sequence yielding the third value once, or nothing.
func (e Either4[T1, T2, T3, T4]) StreamThird() iter.Seq[T3] {
	return func(yield func(T3) bool) {
		if e.slot == slot3 {
			yield(e.third)
		}
	}
}

// StreamFourth returns a sequence yielding the fourth value once, or nothing.
func (e Either4[T1, T2, T3, T4]) StreamFourth() iter.Seq[T4] {
	return func(yield func(T4) bool) {
		if e.slot == slot4 {
			yield(e.fourth)
		}
	}
}

// OrFirst returns e if the first slot is occupied, otherwise Either4
// holding the value produced by supplier.
func (e Either4[T1, T2, T3, T4]) OrFirst(supplier func() T1) Either4[T1, T2, T3, T4] {
	if supplier == nil {
		argumentNull("the first supplier provided cannot be nil")
	}
	if e.slot == slot1 {
		return e
	}
	return Either4[T1, T2, T3, T4]{slot: slot1, first: checkResult(supplier(), "the first supplier returned nil")}
}

// OrSecond returns e if the second slot is occupied, otherwise Either4
// holding the value produced by supplier.
func (e Either4[T1, T2, T3, T4]) OrSecond(supplier func() T2) Either4[T1, T2, T3, T4] {
	if supplier == nil {
		argumentNull("the second supplier provided cannot be nil")
	}
	if e.slot == slot2 {
		return e
	}
	return Either4[T1, T2, T3, T4]{slot: slot2, second: checkResult(supplier(), "the second supplier returned nil")}
}

// OrThird returns e if the third slot is occupied, otherwise Either4
// holding the value produced by supplier.
func (e Either4[T1, T2, T3, T4]) OrThird(supplier func() T3) Either4[T1, T2, T3, T4] {
	if supplier == nil {
		argumentNull("the third supplier provided cannot be nil")
	}
	if e.slot == slot3 {
		return e
	}
	return Either4[T1, T2, T3, T4]{slot: slot3, third: checkResult(supplier(), "the third supplier returned nil")}
}

// OrFourth returns e if the fourth slot is occupied, otherwise Either4
// holding the value produced by supplier.
func (e Either4[T1, T2, T3, T4]) OrFourth(supplier func() T4) Either4[T1, T2, T3, T4] {
	if supplier == nil {
		argumentNull("the fourth supplier provided cannot be nil")
	}
	if e.slot == slot4 {
		return e
	}
	return Either4[T1, T2, T3, T4]{slot: slot4, fourth: checkResult(supplier(), "the fourth supplier returned nil")}
}

// OrElseFirst returns the first value, or other verbatim.
func (e Either4[T1, T2, T3, T4]) OrElseFirst(other T1) T1 {
	if e.slot == slot1 {
		return e.first
	}
	return other
}

// OrElseGetFirst returns the first value, or the result of supplier.
// The supplier must be non-nil even when it is not called.
func (e Either4[T1, T2, T3, T4]) OrElseGetFirst(supplier func() T1) T1 {
	if supplier == nil {
		argumentNull("the first supplier provided cannot be nil")
	}
	if e.slot == slot1 {
		return e.first
	}
	return supplier()
}

// OrElseThrowFirst returns the first value, or an error wrapping [ErrElementNotFound].
func (e Either4[T1, T2, T3, T4]) OrElseThrowFirst() (T1, error) {
	if e.slot == slot1 {
		return e.first, nil
	}
	var zero T1
	return zero, notPresent("first")
}

// OrElseThrowFirstFunc returns the first value, or the error produced by
// errSupplier. errSupplier is only checked when it is needed.
func (e Either4[T1, T2, T3, T4]) OrElseThrowFirstFunc(errSupplier func() error) (T1, error) {
	if e.slot == slot1 {
		return e.first, nil
	}
	var zero T1
	return zero, supplyError(errSupplier)
}

// OrElseSecond returns the second value, or other verbatim.
func (e Either4[T1, T2, T3, T4]) OrElseSecond(other T2) T2 {
	if e.slot == slot2 {
		return e.second
	}
	return other
}

// OrElseGetSecond returns the second value, or the result of supplier.
// The supplier must be non-nil even when it is not called.
func (e Either4[T1, T2, T3, T4]) OrElseGetSecond(supplier func() T2) T2 {
	if supplier == nil {
		argumentNull("the second supplier provided cannot be nil")
	}
	if e.slot == slot2 {
		return e.second
	}
	return supplier()
}

// OrElseThrowSecond returns the second value, or an error wrapping [ErrElementNotFound].
func (e Either4[T1, T2, T3, T4]) OrElseThrowSecond() (T2, error) {
	if e.slot == slot2 {
		return e.second, nil
	}
	var zero T2
	return zero, notPresent("second")
}

// OrElseThrowSecondFunc returns the second value, or the error produced by
// errSupplier. errSupplier is only checked when it is needed.
func (e Either4[T1, T2, T3, T4]) OrElseThrowSecondFunc(errSupplier func() error) (T2, error) {
	if e.slot == slot2 {
		return e.second, nil
	}
	var zero T2
	return zero, supplyError(errSupplier)
}

// OrElseThird returns the third value, or other verbatim.
func (e Either4[T1, T2, T3, T4]) OrElseThird(other T3) T3 {
	if e.slot == slot3 {
		return e.third
	}
	return other
}

// OrElseGetThird returns the third value, or the result of supplier.
// The supplier must be non-nil even when it is not called.
func (e Either4[T1, T2, T3, T4]) OrElseGetThird(supplier func() T3) T3 {
	if supplier == nil {
		argumentNull("the third supplier provided cannot be nil")
	}
	if e.slot == slot3 {
		return e.third
	}
	return supplier()
}

// OrElseThrowThird returns the third value, or an error wrapping [ErrElementNotFound].
func (e Either4[T1, T2, T3, T4]) OrElseThrowThird() (T3, error) {
	if e.slot == slot3 {
		return e.third, nil
	}
	var zero T3
	return zero, notPresent("third")
}

// OrElseThrowThirdFunc returns the third value, or the error produced by
// errSupplier. errSupplier is only checked when it is needed.
func (e Either4[T1, T2, T3, T4]) OrElseThrowThirdFunc(errSupplier func() error) (T3, error) {
	if e.slot == slot3 {
		return e.third, nil
	}
	var zero T3
	return zero, supplyError(errSupplier)
}

// OrElseFourth returns the fourth value, or other verbatim.
func (e Either4[T1, T2, T3, T4]) OrElseFourth(other T4) T4 {
	if e.slot == slot4 {
		return e.fourth
	}
	return other
}

// OrElseGetFourth returns the fourth value, or the result of supplier.
// The supplier must be non-nil even when it is not called.
func (e Either4[T1, T2, T3, T4]) OrElseGetFourth(supplier func() T4) T4 {
	if supplier == nil {
		argumentNull("the fourth supplier provided cannot be nil")
	}
	if e.slot == slot4 {
		return e.fourth
	}
	return supplier()
}

// OrElseThrowFourth returns the fourth value, or an error wrapping [ErrElementNotFound].
func (e Either4[T1, T2, T3, T4]) OrElseThrowFourth() (T4, error) {
	if e.slot == slot4 {
		return e.fourth, nil
	}
	var zero T4
	return zero, notPresent("fourth")
}

// OrElseThrowFourthFunc returns the fourth value, or the error produced by
// errSupplier. errSupplier is only checked when it is needed.
func (e Either4[T1, T2, T3, T4]) OrElseThrowFourthFunc(errSupplier func() error) (T4, error) {
	if e.slot == slot4 {
		return e.fourth, nil
	}
	var zero T4
	return zero, supplyError(errSupplier)
}

// String formats e as First[v], Second[v] and so on.
func (e Either4[T1, T2, T3, T4]) String() string {
	switch e.slot {
	case slot1:
		return fmt.Sprintf("First[%v]", e.first)
	case slot2:
		return fmt.Sprintf("Second[%v]", e.second)
	case slot3:
		return fmt.Sprintf("Third[%v]", e.third)
	case slot4:
		return fmt.Sprintf("Fourth[%v]", e.fourth)
	}
	return "Either4[]"
}

// MapFirst4 applies f to the first value; other slots pass through.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapFirst4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T1) V) Either4[V, T2, T3, T4] {
	if f == nil {
		argumentNull("the first map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[V, T2, T3, T4]{slot: slot1, first: checkResult(f(e.first), "the first map returned nil")}
	case slot2:
		return Either4[V, T2, T3, T4]{slot: slot2, second: e.second}
	case slot3:
		return Either4[V, T2, T3, T4]{slot: slot3, third: e.third}
	case slot4:
		return Either4[V, T2, T3, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// MapSecond4 applies f to the second value; other slots pass through.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapSecond4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T2) V) Either4[T1, V, T3, T4] {
	if f == nil {
		argumentNull("the second map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[T1, V, T3, T4]{slot: slot1, first: e.first}
	case slot2:
		return Either4[T1, V, T3, T4]{slot: slot2, second: checkResult(f(e.second), "the second map returned nil")}
	case slot3:
		return Either4[T1, V, T3, T4]{slot: slot3, third: e.third}
	case slot4:
		return Either4[T1, V, T3, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// MapThird4 applies f to the third value; other slots pass through.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapThird4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T3) V) Either4[T1, T2, V, T4] {
	if f == nil {
		argumentNull("the third map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[T1, T2, V, T4]{slot: slot1, first: e.first}
	case slot2:
		return Either4[T1, T2, V, T4]{slot: slot2, second: e.second}
	case slot3:
		return Either4[T1, T2, V, T4]{slot: slot3, third: checkResult(f(e.third), "the third map returned nil")}
	case slot4:
		return Either4[T1, T2, V, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// MapFourth4 applies f to the fourth value; other slots pass through.
// Panics with [ErrArgumentNull] if f is nil or returns nil.
func MapFourth4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T4) V) Either4[T1, T2, T3, V] {
	if f == nil {
		argumentNull("the fourth map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[T1, T2, T3, V]{slot: slot1, first: e.first}
	case slot2:
		return Either4[T1, T2, T3, V]{slot: slot2, second: e.second}
	case slot3:
		return Either4[T1, T2, T3, V]{slot: slot3, third: e.third}
	case slot4:
		return Either4[T1, T2, T3, V]{slot: slot4, fourth: checkResult(f(e.fourth), "the fourth map returned nil")}
	}
	panic(unoccupied())
}

// MapAll4 applies the map matching the occupied slot.
// All maps must be non-nil; the applied one must not return nil.
func MapAll4[T1, T2, T3, T4, V1, V2, V3, V4 any](e Either4[T1, T2, T3, T4], firstMap func(T1) V1, secondMap func(T2) V2, thirdMap func(T3) V3, fourthMap func(T4) V4) Either4[V1, V2, V3, V4] {
	if firstMap == nil {
		argumentNull("the first map provided cannot be nil")
	}
	if secondMap == nil {
		argumentNull("the second map provided cannot be nil")
	}
	if thirdMap == nil {
		argumentNull("the third map provided cannot be nil")
	}
	if fourthMap == nil {
		argumentNull("the fourth map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[V1, V2, V3, V4]{slot: slot1, first: checkResult(firstMap(e.first), "the first map returned nil")}
	case slot2:
		return Either4[V1, V2, V3, V4]{slot: slot2, second: checkResult(secondMap(e.second), "the second map returned nil")}
	case slot3:
		return Either4[V1, V2, V3, V4]{slot: slot3, third: checkResult(thirdMap(e.third), "the third map returned nil")}
	case slot4:
		return Either4[V1, V2, V3, V4]{slot: slot4, fourth: checkResult(fourthMap(e.fourth), "the fourth map returned nil")}
	}
	panic(unoccupied())
}

// MapTo4 folds e into a V using the map matching the occupied slot.
// All maps must be non-nil. The result may be nil.
func MapTo4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], firstMap func(T1) V, secondMap func(T2) V, thirdMap func(T3) V, fourthMap func(T4) V) V {
	if firstMap == nil {
		argumentNull("the first map provided cannot be nil")
	}
	if secondMap == nil {
		argumentNull("the second map provided cannot be nil")
	}
	if thirdMap == nil {
		argumentNull("the third map provided cannot be nil")
	}
	if fourthMap == nil {
		argumentNull("the fourth map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return firstMap(e.first)
	case slot2:
		return secondMap(e.second)
	case slot3:
		return thirdMap(e.third)
	case slot4:
		return fourthMap(e.fourth)
	}
	panic(unoccupied())
}

// FlatMapFirst4 sequences the first value into f and returns f's result
// as is. Other slots pass through without calling f.
func FlatMapFirst4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T1) Either4[V, T2, T3, T4]) Either4[V, T2, T3, T4] {
	if f == nil {
		argumentNull("the first flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return checkEither4(f(e.first))
	case slot2:
		return Either4[V, T2, T3, T4]{slot: slot2, second: e.second}
	case slot3:
		return Either4[V, T2, T3, T4]{slot: slot3, third: e.third}
	case slot4:
		return Either4[V, T2, T3, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// FlatMapSecond4 sequences the second value into f and returns f's result
// as is. Other slots pass through without calling f.
func FlatMapSecond4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T2) Either4[T1, V, T3, T4]) Either4[T1, V, T3, T4] {
	if f == nil {
		argumentNull("the second flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[T1, V, T3, T4]{slot: slot1, first: e.first}
	case slot2:
		return checkEither4(f(e.second))
	case slot3:
		return Either4[T1, V, T3, T4]{slot: slot3, third: e.third}
	case slot4:
		return Either4[T1, V, T3, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// FlatMapThird4 sequences the third value into f and returns f's result
// as is. Other slots pass through without calling f.
func FlatMapThird4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T3) Either4[T1, T2, V, T4]) Either4[T1, T2, V, T4] {
	if f == nil {
		argumentNull("the third flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[T1, T2, V, T4]{slot: slot1, first: e.first}
	case slot2:
		return Either4[T1, T2, V, T4]{slot: slot2, second: e.second}
	case slot3:
		return checkEither4(f(e.third))
	case slot4:
		return Either4[T1, T2, V, T4]{slot: slot4, fourth: e.fourth}
	}
	panic(unoccupied())
}

// FlatMapFourth4 sequences the fourth value into f and returns f's result
// as is. Other slots pass through without calling f.
func FlatMapFourth4[T1, T2, T3, T4, V any](e Either4[T1, T2, T3, T4], f func(T4) Either4[T1, T2, T3, V]) Either4[T1, T2, T3, V] {
	if f == nil {
		argumentNull("the fourth flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return Either4[T1, T2, T3, V]{slot: slot1, first: e.first}
	case slot2:
		return Either4[T1, T2, T3, V]{slot: slot2, second: e.second}
	case slot3:
		return Either4[T1, T2, T3, V]{slot: slot3, third: e.third}
	case slot4:
		return checkEither4(f(e.fourth))
	}
	panic(unoccupied())
}

// FlatMapAll4 sequences e into the flat map matching the occupied slot.
// All flat maps must be non-nil.
func FlatMapAll4[T1, T2, T3, T4, V1, V2, V3, V4 any](e Either4[T1, T2, T3, T4], firstMap func(T1) Either4[V1, V2, V3, V4], secondMap func(T2) Either4[V1, V2, V3, V4], thirdMap func(T3) Either4[V1, V2, V3, V4], fourthMap func(T4) Either4[V1, V2, V3, V4]) Either4[V1, V2, V3, V4] {
	if firstMap == nil {
		argumentNull("the first flat map provided cannot be nil")
	}
	if secondMap == nil {
		argumentNull("the second flat map provided cannot be nil")
	}
	if thirdMap == nil {
		argumentNull("the third flat map provided cannot be nil")
	}
	if fourthMap == nil {
		argumentNull("the fourth flat map provided cannot be nil")
	}
	switch e.slot {
	case slot1:
		return checkEither4(firstMap(e.first))
	case slot2:
		return checkEither4(secondMap(e.second))
	case slot3:
		return checkEither4(thirdMap(e.third))
	case slot4:
		return checkEither4(fourthMap(e.fourth))
	}
	panic(unoccupied())
}

func checkEither4[T1, T2, T3, T4 any](e Either4[T1, T2, T3, T4]) Either4[T1, T2, T3, T4] {
	if e.slot == noSlot {
		argumentNull("the returned either cannot be nil")
	}
	return e
}
