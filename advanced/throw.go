package advanced

import "github.com/pkg/errors"

var (
	// Three points that do not have a well defined circumcircle, because they
	// are coincident or collinear.
	ErrDegenerateTriple = errors.New("degenerate triple: coincident or collinear points")
	ErrInvalidPoint     = errors.New("invalid point")
	ErrInvalidOptions   = errors.New("invalid options")
)

// Input problems are returned as ordinary errors. Broken invariants deep inside
// the sweep (a stale arena handle, a record changing state twice) are not
// something a caller can act on, so those panic, and the public API recovers
// to convert to an error.

// Distinct from plain errors so that runtime errors, which also implement
// error, are never mistaken for one of ours.
type TriangulateError struct {
	error
}

func (e TriangulateError) Cause() error {
	return e.error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
