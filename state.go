package cursorvec

// StateKind identifies the variant of a State.
type StateKind uint8

const (
	// StateValid means the cursor addresses an element; State.Value
	// returns a pointer to it.
	StateValid StateKind = iota

	// StateMaxOut means movement tried to advance past the end under the
	// bounded policy; the cursor was clamped at the last valid index.
	StateMaxOut

	// StateMinOut means movement tried to retreat before the first
	// element under the bounded policy; the cursor was clamped at 0.
	StateMinOut

	// StateOutOfRange means the cursor does not address any element:
	// the sequence is empty, or the cursor is desynced after mutation
	// or an explicit SetCursor.
	StateOutOfRange
)

// String returns the name of the state kind.
func (k StateKind) String() string {
	switch k {
	case StateValid:
		return "Valid"
	case StateMaxOut:
		return "MaxOut"
	case StateMinOut:
		return "MinOut"
	case StateOutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}

// State is the tagged result of a cursor operation. Callers who need to
// know why no element was produced match on Kind; callers who only want
// "what's there, if anything" use Value.
type State[T any] struct {
	kind  StateKind
	value *T
}

func valid[T any](v *T) State[T] {
	return State[T]{kind: StateValid, value: v}
}

func maxOut[T any]() State[T] {
	return State[T]{kind: StateMaxOut}
}

func minOut[T any]() State[T] {
	return State[T]{kind: StateMinOut}
}

func outOfRange[T any]() State[T] {
	return State[T]{kind: StateOutOfRange}
}

// Kind returns the state's variant.
func (s State[T]) Kind() StateKind {
	return s.kind
}

// IsValid returns true if the state holds an element.
func (s State[T]) IsValid() bool {
	return s.kind == StateValid
}

// Value converts the state to its plain-optional form: a pointer to the
// element and true for StateValid, nil and false for everything else.
func (s State[T]) Value() (*T, bool) {
	if s.kind != StateValid {
		return nil, false
	}
	return s.value, true
}

// Err maps the state to a sentinel error, or nil for StateValid. It is
// the bridge for callers who prefer error handling over matching kinds.
func (s State[T]) Err() error {
	switch s.kind {
	case StateMaxOut:
		return ErrMaxOut
	case StateMinOut:
		return ErrMinOut
	case StateOutOfRange:
		return ErrOutOfRange
	default:
		return nil
	}
}

// String returns the name of the state's variant.
func (s State[T]) String() string {
	return s.kind.String()
}
