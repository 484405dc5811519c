package assert

import "github.com/oomph-ac/stride/oerror"

// IsTrue panics with a formatted StrideError if ok is false. It is only used for programmer
// errors, such as passing a nil required collaborator.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
