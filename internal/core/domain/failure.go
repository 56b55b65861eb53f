package domain

import "errors"

// Failure attaches the sentinel naming a failed operation to the error that
// caused it. errors.Is matches the sentinel as well as anything in the cause
// chain, and the logger shows the sentinel as its own link.
type Failure struct {
	Sentinel error
	Cause    error
}

// Fail wraps cause with sentinel. It returns nil when cause is nil.
func Fail(sentinel, cause error) error {
	if cause == nil {
		return nil
	}
	return &Failure{Sentinel: sentinel, Cause: cause}
}

func (f *Failure) Error() string {
	return f.Sentinel.Error() + ": " + f.Cause.Error()
}

// Message returns the sentinel text without the cause.
func (f *Failure) Message() string {
	return f.Sentinel.Error()
}

// Metadata returns an empty map; metadata lives on the zerr links around it.
func (f *Failure) Metadata() map[string]any {
	return map[string]any{}
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Is reports whether target is the sentinel or one of the errors it wraps.
func (f *Failure) Is(target error) bool {
	return errors.Is(f.Sentinel, target)
}
