package studiasdk

// Result is the uniform envelope every client-facing operation resolves to:
// either success with data or failure with a display-ready message. Nothing
// past this shape reaches the UI layer.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps data in a successful Result.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps a display message in a failed Result.
func Fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

// Wrap converts a (value, error) pair into a Result.
func Wrap[T any](data T, err error) Result[T] {
	if err != nil {
		return Fail[T](err.Error())
	}
	return Ok(data)
}
