// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"code.hybscloud.com/either"
	"testing"
)

var (
	sinkEither  either.Either[int, string]
	sinkSwapped either.Either[string, int]
	sinkEither4 either.Either4[int, string, int64, float32]
	sinkInt     int
	sinkBool    bool
)

func TestEitherAllocationsConstruct(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		sinkEither = either.Left[int, string](42)
	})
	if allocs > 0 {
		t.Errorf("Left allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		sinkEither4 = either.Fourth4[int, string, int64](float32(1.5))
	})
	if allocs > 0 {
		t.Errorf("Fourth4 allocs = %v; want 0", allocs)
	}
}

func TestEitherAllocationsCombinators(t *testing.T) {
	e := either.Left[int, string](42)

	allocs := testing.AllocsPerRun(100, func() {
		sinkSwapped = e.Swap()
	})
	if allocs > 0 {
		t.Errorf("Swap allocs = %v; want 0", allocs)
	}

	inc := func(x int) int { return x + 1 }
	allocs = testing.AllocsPerRun(100, func() {
		sinkEither = either.MapLeft(e, inc)
	})
	if allocs > 0 {
		t.Errorf("MapLeft allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		sinkInt = e.OrElseLeft(0)
		sinkBool = e.HasRight()
	})
	if allocs > 0 {
		t.Errorf("OrElseLeft allocs = %v; want 0", allocs)
	}
}
