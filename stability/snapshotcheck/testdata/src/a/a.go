package a

// Widget is still being designed.
//
//stability:snapshot
type Widget struct { // want Widget:"snapshot BETA" `'Widget' is a snapshot element in the 'BETA' phase`
	//stability:snapshot ALPHA
	Size int // want Size:"snapshot ALPHA" `'Widget.Size' is a snapshot element in the 'ALPHA' phase`

	Name string
}

// Grow doubles the size.
//
//stability:snapshot IN_DEVELOPMENT
func (w *Widget) Grow() { w.Size *= 2 } // want Grow:"snapshot IN_DEVELOPMENT" `'Widget.Grow' is a snapshot element in the 'IN_DEVELOPMENT' phase`

// Quiet is marked but its report is silenced.
//
//stability:snapshot RELEASE_CANDIDATE
//nolint:snapshot
func Quiet() int { return 1 } // want Quiet:"snapshot RELEASE_CANDIDATE"

//stability:snapshot release candidate
const Limit = 10 // want Limit:"snapshot RELEASE_CANDIDATE" `'Limit' is a snapshot element in the 'RELEASE_CANDIDATE' phase`

//stability:snapshot ALPHA
var (
	Low  = 1 // want Low:"snapshot ALPHA" `'Low' is a snapshot element in the 'ALPHA' phase`
	High = 9 // want High:"snapshot ALPHA" `'High' is a snapshot element in the 'ALPHA' phase`
)

//stability:snapshot BOGUS
var Broken = 0 // want `malformed snapshot directive on 'Broken'`

// Stable carries no marker.
func Stable() int { return Low }

// Box holds a value.
//
//stability:snapshot
type Box[T any] struct{ V T } // want Box:"snapshot BETA" `'Box' is a snapshot element in the 'BETA' phase`

// Get returns the boxed value.
//
//stability:snapshot ALPHA
func (b Box[T]) Get() T { return b.V } // want Get:"snapshot ALPHA" `'Box.Get' is a snapshot element in the 'ALPHA' phase`
