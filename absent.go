// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "reflect"

// Slot tags shared by all arities. The zero tag marks a container that was
// never constructed.
const (
	noSlot uint8 = iota
	slot1
	slot2
	slot3
	slot4
)

// isAbsent reports whether v is Go's notion of "no value": a nil interface,
// or a nil pointer, map, slice, func, chan or unsafe pointer.
//
// An interface-typed value is absent only when the interface itself is nil;
// a typed nil stored in an interface counts as a value.
// Value kinds are never absent and are decided from the static type alone,
// so the common case neither boxes nor allocates.
func isAbsent[T any](v T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface:
		return any(v) == nil
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(any(v)).IsNil()
	default:
		return false
	}
}
