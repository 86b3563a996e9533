package d

//stability:snapshot IN_DEVELOPMENT
func Draft() {} // want Draft:"snapshot IN_DEVELOPMENT" `'Draft' is a snapshot element in the 'IN_DEVELOPMENT' phase`

//stability:snapshot BETA
func Settled() {} // want Settled:"snapshot BETA"
