package domain

// Void is the value type for results that carry no payload.
type Void struct{}

// Result holds either a success value or an AppError, never both. Callers
// must branch on IsOk before reading Value or Err.
type Result[T any] struct {
	value T
	err   *AppError
	ok    bool
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// OkVoid is a success result with no payload.
func OkVoid() Result[Void] {
	return Ok(Void{})
}

// Fail wraps an expected domain failure.
func Fail[T any](err *AppError) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the result holds a success value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the success value. Only meaningful when IsOk is true.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure. Only meaningful when IsOk is false.
func (r Result[T]) Err() *AppError {
	return r.err
}
