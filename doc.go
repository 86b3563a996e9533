// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides immutable sum types in Go.
//
// A sum type holds exactly one value drawn from a fixed list of alternative
// types, tagged by the slot it occupies:
//
//   - [Either]: two slots, left and right
//   - [Either3]: three slots, first to third
//   - [Either4]: four slots, first to fourth
//
// The three arities are independent types with the same shape. Every
// combinator below exists once per slot and behaves identically in every
// arity; the 3- and 4-slot names carry an arity suffix ([MapFirst3],
// [FlatMapAll4]).
//
// # Design Philosophy
//
// either provides:
//   - A closed tagged representation: a slot tag plus one field per slot, no
//     interfaces and no boxing
//   - Values that never hold nil: construction with a nil value panics and
//     mapping to nil panics
//   - Immutability: combinators return new values; a no-op returns its
//     receiver
//
// Go methods cannot introduce type parameters, so combinators that change a
// slot's type are package functions taking the container first. Combinators
// that only reuse or permute the receiver's types are methods.
//
// # Construction
//
//   - [Left], [Right]
//   - [First3], [Second3], [Third3]
//   - [First4], [Second4], [Third4], [Fourth4]
//
// The zero value of a container is not valid. Presence predicates report
// false for every slot; any combinator that must dispatch on it panics with
// [ErrValueMissing].
//
// # Presence and Access
//
//   - [Either.Left], [Either.Right]: comma-ok accessors
//   - [Either.LeftRaw], [Either.RightRaw]: zero value when not occupied
//   - [Either.HasLeft], [Either.HasRight]: exactly one is true
//   - [Either.Slot]: 1-based index of the occupied slot
//
// # Dispatch
//
//   - [Either.IfLeft], [Either.IfRight]: run an action when occupied
//   - [Either.IfPresent]: run the action matching the occupied slot
//
// # Mapping
//
//   - [MapLeft], [MapRight]: map one slot, pass the others through
//   - [MapAll]: map whichever slot is occupied
//   - [MapTo]: fold into a single result type
//   - [FlatMapLeft], [FlatMapRight], [FlatMapAll]: monadic chaining
//
// # Swapping
//
//   - [Either.Swap]: exchange left and right
//   - [Either3.SwapFirst], [Either3.SwapSecond]: adjacent pairs 1↔2, 2↔3
//   - [Either4.SwapFirst], [Either4.SwapSecond], [Either4.SwapThird]
//
// Composing adjacent swaps reaches every slot order.
//
// # Sequences and Defaults
//
//   - [Either.StreamLeft]: an [iter.Seq] of zero or one value
//   - [Either.OrLeft]: occupy the slot from a supplier unless already occupied
//   - [Either.OrElseLeft], [Either.OrElseGetLeft]: value or fallback
//   - [Either.OrElseThrowLeft]: value or [ErrElementNotFound]
//   - [Either.OrElseThrowLeftFunc]: value or a caller-supplied error
//
// # Errors
//
// A nil callback, supplier or mapped result is a programming error: the
// combinator panics with a [*ContractError] whose Kind is [ErrArgumentNull]
// ([ErrValueMissing] for construction). Recovered values match with
// [errors.Is]. Callbacks are checked before anything runs, including callbacks
// that will not be called, with one exception: the error supplier of the
// OrElseThrow...Func accessors is only checked when it is needed.
//
// A missing slot in OrElseThrow accessors is an expected outcome and is
// returned as an error wrapping [ErrElementNotFound].
//
// Panics raised by callbacks propagate unchanged.
//
// [FromResult], [ToResult] and [Try] convert between Either[error, A] and
// Go's (value, error) convention.
//
// # Stability
//
// Declarations marked with a //stability:snapshot directive may change; see
// package code.hybscloud.com/either/stability and the snapshotcheck analyzer.
//
// # Example
//
//	e := either.Right[int]("42")
//	n := either.MapTo(e,
//		func(i int) int { return i },
//		func(s string) int { return len(s) },
//	)
//	// n == 2
package either
