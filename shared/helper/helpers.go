package helper

// AssertTyped narrows the result of an untyped lookup to T.
// A missing value and a value of the wrong dynamic type both report !ok.
func AssertTyped[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
