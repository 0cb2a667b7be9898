package store

// Reason says why a read fell back to built-in data.
type Reason string

const (
	// ReasonCorrupt: the stored value is not valid JSON for the collection.
	ReasonCorrupt Reason = "corrupt"
	// ReasonUnavailable: the backend returned an error.
	ReasonUnavailable Reason = "unavailable"
)

// Result is the outcome of a read. Exactly one of three paths was taken:
// stored data decoded fine, the key was absent and got seeded, or the read
// fell back to built-in data for Fallback's reason without writing anything.
type Result[T any] struct {
	Value    T
	Seeded   bool
	Fallback Reason
	// Err is the decode or backend error behind a fallback.
	Err error
}

// OK reports whether Value came from the medium, either stored or just seeded.
func (r Result[T]) OK() bool { return r.Fallback == "" }
