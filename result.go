// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Bridge between Go's (value, error) convention and Either[error, A].
// Left carries the error, Right the value.

// FromResult converts a (value, error) pair into an Either.
// It returns Left(err) when err is non-nil and Right(a) otherwise.
// Panics with [ErrValueMissing] when both err and a are nil.
func FromResult[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Either[error, A]{slot: slot1, left: err}
	}
	return Right[error](a)
}

// ToResult is the inverse of [FromResult].
func ToResult[A any](e Either[error, A]) (A, error) {
	switch e.slot {
	case slot1:
		var zero A
		return zero, e.left
	case slot2:
		return e.right, nil
	}
	panic(unoccupied())
}

// Try runs f and captures its outcome as an Either.
// A panic raised by f is not recovered.
func Try[A any](f func() (A, error)) Either[error, A] {
	if f == nil {
		argumentNull("the function provided cannot be nil")
	}
	return FromResult[A](f())
}
