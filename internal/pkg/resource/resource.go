// Package resource models a screen's "load on mount" fetch as a tagged result.
package resource

import "context"

// State is the lifecycle tag of a Result.
type State int

const (
	Loading State = iota
	Success
	Failure
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is either Loading, Success(Data) or Failure(Err). The zero value is
// Loading.
type Result[T any] struct {
	State State
	Data  T
	Err   error
}

// Load runs fn once and tags its outcome. It can be called again to reload.
func Load[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Result[T] {
	data, err := fn(ctx)
	if err != nil {
		return Failed[T](err)
	}
	return Succeeded(data)
}

func Succeeded[T any](data T) Result[T] {
	return Result[T]{State: Success, Data: data}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{State: Failure, Err: err}
}

func (r Result[T]) IsLoading() bool { return r.State == Loading }
func (r Result[T]) Ok() bool        { return r.State == Success }
func (r Result[T]) Failed() bool    { return r.State == Failure }
