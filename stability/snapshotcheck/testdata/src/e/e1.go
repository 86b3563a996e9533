// want package:"snapshot ALPHA"
//stability:snapshot ALPHA
package e // want `'e' is a snapshot element in the 'ALPHA' phase`

type Inner struct{}

type Outer struct {
	//stability:snapshot
	Inner // want Inner:"snapshot BETA" `'Outer.Inner' is a snapshot element in the 'BETA' phase`
}
