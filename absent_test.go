package either

import (
	"errors"
	"testing"
	"unsafe"
)

type nopError struct{}

func (*nopError) Error() string { return "" }

func TestIsAbsent(t *testing.T) {
	var (
		nilPtr    *int
		nilMap    map[string]int
		nilSlice  []byte
		nilFunc   func()
		nilChan   chan int
		nilUnsafe unsafe.Pointer
		nilErr    error
		typedNil  *nopError
	)
	absent := []bool{
		isAbsent(nilPtr),
		isAbsent(nilMap),
		isAbsent(nilSlice),
		isAbsent(nilFunc),
		isAbsent(nilChan),
		isAbsent(nilUnsafe),
		isAbsent(nilErr),
		isAbsent[any](nil),
	}
	for i, got := range absent {
		if !got {
			t.Fatalf("case %d: got present, want absent", i)
		}
	}

	x := 0
	present := []bool{
		isAbsent(0),
		isAbsent(""),
		isAbsent(struct{}{}),
		isAbsent(&x),
		isAbsent([]byte{}),
		isAbsent(map[string]int{}),
		isAbsent(errors.New("e")),
		isAbsent[error](typedNil),
		isAbsent[any](nilPtr),
	}
	for i, got := range present {
		if got {
			t.Fatalf("case %d: got absent, want present", i)
		}
	}
}

func TestZeroContainer(t *testing.T) {
	var e2 Either[int, string]
	var e3 Either3[int, string, bool]
	var e4 Either4[int, string, bool, float64]
	if e2.Slot() != 0 || e3.Slot() != 0 || e4.Slot() != 0 {
		t.Fatalf("got slots %d %d %d, want 0 0 0", e2.Slot(), e3.Slot(), e4.Slot())
	}
	if e2.slot != noSlot || e2.HasLeft() || e2.HasRight() {
		t.Fatal("zero Either must occupy no slot")
	}
	if e4.HasFirst() || e4.HasSecond() || e4.HasThird() || e4.HasFourth() {
		t.Fatal("zero Either4 must occupy no slot")
	}
}
