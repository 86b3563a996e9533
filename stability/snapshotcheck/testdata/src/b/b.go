package b

import (
	"a"
	"c" // want `import of snapshot package "c" in the 'ALPHA' phase`
)

// Use touches snapshot elements of a.
func Use() int {
	w := &a.Widget{Name: "w"} // want `use of snapshot element 'a.Widget' in the 'BETA' phase`
	w.Grow()                  // want `use of snapshot element 'a.Widget.Grow' in the 'IN_DEVELOPMENT' phase`
	n := w.Size               // want `use of snapshot element 'a.Widget.Size' in the 'ALPHA' phase`
	n += a.Quiet()            // want `use of snapshot element 'a.Quiet' in the 'RELEASE_CANDIDATE' phase`
	return n + a.Stable() + c.Answer()
}

// Generic uses an instantiated snapshot type.
func Generic() int {
	b := a.Box[int]{V: 3} // want `use of snapshot element 'a.Box' in the 'BETA' phase`
	return b.Get()        // want `use of snapshot element 'a.Box.Get' in the 'ALPHA' phase`
}

// Hidden reads a snapshot constant without a report.
//
//nolint:snapshot
func Hidden() int { return a.Limit + a.Low }

var total = a.High // want `use of snapshot element 'a.High' in the 'ALPHA' phase`

//nolint:snapshot
var quiet = a.High

func init() { _, _ = total, quiet }
