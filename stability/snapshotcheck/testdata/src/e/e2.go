//stability:snapshot ALPHA
package e

// Make is not marked itself.
func Make() Outer { return Outer{} }
