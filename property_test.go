// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/either"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

func randEither(rng *rand.Rand) either.Either[int, string] {
	if rng.IntN(2) == 0 {
		return either.Left[int, string](randInt(rng))
	}
	return either.Right[int](randString(rng))
}

func randEither3(rng *rand.Rand) either.Either3[int, string, int64] {
	switch rng.IntN(3) {
	case 0:
		return either.First3[int, string, int64](randInt(rng))
	case 1:
		return either.Second3[int, string, int64](randString(rng))
	}
	return either.Third3[int, string](rng.Int64())
}

func randEither4(rng *rand.Rand) either.Either4[int, string, int64, float32] {
	switch rng.IntN(4) {
	case 0:
		return either.First4[int, string, int64, float32](randInt(rng))
	case 1:
		return either.Second4[int, string, int64, float32](randString(rng))
	case 2:
		return either.Third4[int, string, int64, float32](rng.Int64())
	}
	return either.Fourth4[int, string, int64](rng.Float32())
}

func id[T any](v T) T { return v }

// --- Group 1: Exclusivity ---

// TestPropertyExclusive: exactly one Has* is true, and it matches Slot.
func TestPropertyExclusive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		e2 := randEither(rng)
		if e2.HasLeft() == e2.HasRight() {
			t.Fatalf("%v: HasLeft=%v HasRight=%v", e2, e2.HasLeft(), e2.HasRight())
		}

		e3 := randEither3(rng)
		has3 := []bool{e3.HasFirst(), e3.HasSecond(), e3.HasThird()}
		if slices.Index(has3, true) != e3.Slot()-1 || slices.Index(has3[e3.Slot():], true) >= 0 {
			t.Fatalf("%v: got %v", e3, has3)
		}

		e4 := randEither4(rng)
		has4 := []bool{e4.HasFirst(), e4.HasSecond(), e4.HasThird(), e4.HasFourth()}
		if slices.Index(has4, true) != e4.Slot()-1 || slices.Index(has4[e4.Slot():], true) >= 0 {
			t.Fatalf("%v: got %v", e4, has4)
		}
	}
}

// --- Group 2: Functor Laws ---

// TestPropertyMapIdentity: MapAll(e, id, id) ≡ e
func TestPropertyMapIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for range propertyN {
		e := randEither(rng)
		if got := either.MapAll(e, id[int], id[string]); got != e {
			t.Fatalf("MapAll(%v, id, id) = %v", e, got)
		}
		e3 := randEither3(rng)
		if got := either.MapAll3(e3, id[int], id[string], id[int64]); got != e3 {
			t.Fatalf("MapAll3(%v, id, id, id) = %v", e3, got)
		}
		e4 := randEither4(rng)
		if got := either.MapAll4(e4, id[int], id[string], id[int64], id[float32]); got != e4 {
			t.Fatalf("MapAll4(%v, id, id, id, id) = %v", e4, got)
		}
	}
}

// TestPropertyMapComposition: MapLeft(MapLeft(e, f), g) ≡ MapLeft(e, g∘f)
func TestPropertyMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2))
	f := func(x int) int { return x*2 + 1 }
	g := func(x int) int { return x - 7 }
	for range propertyN {
		e := randEither(rng)
		left := either.MapLeft(either.MapLeft(e, f), g)
		right := either.MapLeft(e, func(x int) int { return g(f(x)) })
		if left != right {
			t.Fatalf("composition: %v != %v", left, right)
		}
	}
}

// TestPropertyMapPreservesSlot: mapping one slot never moves the value.
func TestPropertyMapPreservesSlot(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 3))
	for range propertyN {
		e := randEither3(rng)
		m := either.MapSecond3(e, func(s string) int { return len(s) })
		if m.Slot() != e.Slot() {
			t.Fatalf("MapSecond3 moved %v to slot %d", e, m.Slot())
		}
		if e.HasSecond() && m.SecondRaw() != len(e.SecondRaw()) {
			t.Fatalf("MapSecond3(%v) = %v", e, m)
		}
		if e.HasThird() && m.ThirdRaw() != e.ThirdRaw() {
			t.Fatalf("MapSecond3(%v) = %v", e, m)
		}
	}
}

// --- Group 3: Monad Laws ---

// TestPropertyFlatMapLeftIdentity: FlatMapRight(Right(a), f) ≡ f(a)
func TestPropertyFlatMapLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 4))
	f := func(s string) either.Either[int, string] {
		if len(s)%2 == 0 {
			return either.Left[int, string](len(s))
		}
		return either.Right[int](s + s)
	}
	for range propertyN {
		a := randString(rng)
		if got, want := either.FlatMapRight(either.Right[int](a), f), f(a); got != want {
			t.Fatalf("FlatMapRight(Right(%q), f) = %v, want %v", a, got, want)
		}
	}
}

// TestPropertyFlatMapRightIdentity: FlatMapRight(e, Right) ≡ e
func TestPropertyFlatMapRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 5))
	for range propertyN {
		e := randEither(rng)
		if got := either.FlatMapRight(e, either.Right[int, string]); got != e {
			t.Fatalf("FlatMapRight(%v, Right) = %v", e, got)
		}
	}
}

// TestPropertyFlatMapPassThrough: a flat map on an unoccupied slot passes
// the receiver through without calling the function.
func TestPropertyFlatMapPassThrough(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 6))
	for range propertyN {
		e := randEither4(rng)
		called := false
		got := either.FlatMapFirst4(e, func(x int) either.Either4[int, string, int64, float32] {
			called = true
			return either.First4[int, string, int64, float32](x)
		})
		if called != e.HasFirst() {
			t.Fatalf("FlatMapFirst4(%v): called=%v", e, called)
		}
		if got != e {
			t.Fatalf("FlatMapFirst4(%v) = %v", e, got)
		}
	}
}

// --- Group 4: Swaps ---

// TestPropertySwapInvolution: Swap(Swap(e)) ≡ e
func TestPropertySwapInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for range propertyN {
		e := randEither(rng)
		if got := e.Swap().Swap(); got != e {
			t.Fatalf("Swap(Swap(%v)) = %v", e, got)
		}
		e3 := randEither3(rng)
		if got := e3.SwapFirst().SwapFirst(); got != e3 {
			t.Fatalf("SwapFirst twice on %v = %v", e3, got)
		}
		if got := e3.SwapSecond().SwapSecond(); got != e3 {
			t.Fatalf("SwapSecond twice on %v = %v", e3, got)
		}
		e4 := randEither4(rng)
		if got := e4.SwapFirst().SwapFirst(); got != e4 {
			t.Fatalf("SwapFirst twice on %v = %v", e4, got)
		}
		if got := e4.SwapSecond().SwapSecond(); got != e4 {
			t.Fatalf("SwapSecond twice on %v = %v", e4, got)
		}
		if got := e4.SwapThird().SwapThird(); got != e4 {
			t.Fatalf("SwapThird twice on %v = %v", e4, got)
		}
	}
}

// --- Group 5: Streams and Defaults ---

// TestPropertyStreamCardinality: a stream yields one element iff its slot
// is occupied, and yields the same element on every pass.
func TestPropertyStreamCardinality(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 8))
	for range propertyN {
		e := randEither4(rng)
		counts := []int{
			count(e.StreamFirst()),
			count(e.StreamSecond()),
			count(e.StreamThird()),
			count(e.StreamFourth()),
		}
		for i, n := range counts {
			want := 0
			if i+1 == e.Slot() {
				want = 1
			}
			if n != want {
				t.Fatalf("%v: stream %d yielded %d, want %d", e, i+1, n, want)
			}
		}
		if e.HasSecond() {
			first := slices.Collect(e.StreamSecond())
			again := slices.Collect(e.StreamSecond())
			if !slices.Equal(first, again) {
				t.Fatalf("%v: %v then %v", e, first, again)
			}
		}
	}
}

// TestPropertyOrIdentity: Or on the occupied slot returns the receiver.
func TestPropertyOrIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 9))
	for range propertyN {
		e := randEither(rng)
		var got either.Either[int, string]
		if e.HasLeft() {
			got = e.OrLeft(func() int { t.Fatal("supplier ran"); return 0 })
		} else {
			got = e.OrRight(func() string { t.Fatal("supplier ran"); return "" })
		}
		if got != e {
			t.Fatalf("Or(%v) = %v", e, got)
		}
	}
}

// TestPropertyOrElse: OrElseX(d) is the slot value when present, d otherwise.
func TestPropertyOrElse(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 10))
	for range propertyN {
		e := randEither3(rng)
		d := randInt(rng)
		want := d
		if e.HasFirst() {
			want = e.FirstRaw()
		}
		if got := e.OrElseFirst(d); got != want {
			t.Fatalf("%v.OrElseFirst(%d) = %d, want %d", e, d, got, want)
		}
		_, err := e.OrElseThrowFirst()
		if (err == nil) != e.HasFirst() {
			t.Fatalf("%v.OrElseThrowFirst() err = %v", e, err)
		}
	}
}

// TestPropertyResultRoundTrip: FromResult(ToResult(e)) ≡ e
func TestPropertyResultRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 11))
	errs := []error{either.ErrElementNotFound, either.ErrArgumentNull}
	for range propertyN {
		var e either.Either[error, int]
		if rng.IntN(2) == 0 {
			e = either.Left[error, int](errs[rng.IntN(len(errs))])
		} else {
			e = either.Right[error](randInt(rng))
		}
		a, err := either.ToResult(e)
		if got := either.FromResult(a, err); got != e {
			t.Fatalf("round trip of %v = %v", e, got)
		}
	}
}
