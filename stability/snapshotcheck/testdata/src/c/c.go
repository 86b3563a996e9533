// want package:"snapshot ALPHA"
//stability:snapshot ALPHA
package c // want `'c' is a snapshot element in the 'ALPHA' phase`

// Answer is not marked itself.
func Answer() int { return 42 }
