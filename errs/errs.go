// Package errs defines the closed set of error kinds shared by the
// toolkit's containers. Fallible operations return one of these kinds
// (or nil on success); queries signal absence with a nil reference
// instead of an error.
package errs

// Kind enumerates every error the toolkit can surface.
// It implements error, so the constants below can be returned
// directly and matched with errors.Is.
type Kind int

const (
	// OK exists so the enumeration is total. Operations report
	// success with a nil error, never with OK.
	OK Kind = iota

	// NoMem means an allocation failed.
	NoMem

	// InvalidArg means a nil input, or an iterator that does not
	// belong to the container it was handed to.
	InvalidArg

	// Unknown is an unspecified error.
	Unknown

	// OutOfBounds is reserved for indexed operations that signal
	// instead of returning nil.
	OutOfBounds

	// Empty is reserved for operations that reject empty containers.
	Empty

	// NotFound is reserved for lookup operations.
	NotFound
)

// String returns a stable, human-readable description of the kind.
// Unrecognized values map to a generic message.
func (k Kind) String() string {
	switch k {
	case OK:
		return "success"
	case NoMem:
		return "out of memory"
	case InvalidArg:
		return "invalid argument"
	case OutOfBounds:
		return "access out of bounds"
	case Empty:
		return "container is empty"
	case NotFound:
		return "item not found"
	default:
		return "unknown error"
	}
}

func (k Kind) Error() string {
	return k.String()
}
