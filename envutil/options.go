package envutil

// Option modifies a Reader. Functions like String and Number accept them so
// the caller can provide defaults, missing errors and validation inline.
type Option[T any] func(Reader[T]) Reader[T]

// Default provides a value for an unset variable.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing makes an unset variable an error.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Validate runs f on the Reader's value. If f returns an error, the Reader
// carries that error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}

// Transform runs a transformer from the xform package on the Reader's value.
func Transform[T any](f func(T) (T, error)) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(f)
	}
}
