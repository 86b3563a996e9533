// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"errors"
	"strconv"
	"testing"

	"code.hybscloud.com/either"
)

func TestFromResult(t *testing.T) {
	e := either.FromResult(strconv.Atoi("12"))
	if v, ok := e.Right(); !ok || v != 12 {
		t.Fatalf("got %v, want Right[12]", e)
	}

	bad := either.FromResult(strconv.Atoi("x"))
	err, ok := bad.Left()
	if !ok {
		t.Fatalf("got %v, want Left", bad)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("got %T, want *strconv.NumError", err)
	}

	// The error wins even when a value is also returned.
	boom := errors.New("boom")
	if got := either.FromResult(5, boom); got.LeftRaw() != boom {
		t.Fatalf("got %v, want Left[boom]", got)
	}

	expectPanic(t, either.ErrValueMissing, func() {
		either.FromResult[*int](nil, nil)
	})
}

func TestToResult(t *testing.T) {
	if v, err := either.ToResult(either.Right[error]("ok")); err != nil || v != "ok" {
		t.Fatalf("got %q, %v; want ok, nil", v, err)
	}
	boom := errors.New("boom")
	if v, err := either.ToResult(either.Left[error, string](boom)); err != boom || v != "" {
		t.Fatalf("got %q, %v; want zero, boom", v, err)
	}
	expectPanic(t, either.ErrValueMissing, func() {
		_, _ = either.ToResult(either.Either[error, int]{})
	})
}

func TestTry(t *testing.T) {
	calls := 0
	e := either.Try(func() (int, error) {
		calls++
		return 3, nil
	})
	if calls != 1 || e.RightRaw() != 3 {
		t.Fatalf("got %v after %d calls, want Right[3] after 1", e, calls)
	}

	boom := errors.New("boom")
	f := either.Try(func() (int, error) { return 0, boom })
	if v, _ := f.Left(); v != boom {
		t.Fatalf("got %v, want Left[boom]", f)
	}

	expectPanic(t, either.ErrArgumentNull, func() { either.Try[int](nil) })
}
