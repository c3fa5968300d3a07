package todo

// ErrorKind classifies a failed operation.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Service operation: either a value with a
// success message, or an error kind with a failure message.
type Result[T any] struct {
	ok      bool
	value   T
	kind    ErrorKind
	message string
}

// Ok returns a successful Result.
func Ok[T any](value T, message string) Result[T] {
	return Result[T]{ok: true, value: value, message: message}
}

// Fail returns a failed Result.
func Fail[T any](kind ErrorKind, message string) Result[T] {
	return Result[T]{kind: kind, message: message}
}

// IsOk reports whether the operation succeeded.
func (r Result[T]) IsOk() bool { return r.ok }

// Message returns the success or failure message.
func (r Result[T]) Message() string { return r.message }

// Match calls onOk or onFail depending on the outcome. Both branches are required.
func (r Result[T]) Match(onOk func(value T, message string), onFail func(kind ErrorKind, message string)) {
	if r.ok {
		onOk(r.value, r.message)
		return
	}
	onFail(r.kind, r.message)
}
