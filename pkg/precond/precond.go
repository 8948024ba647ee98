package precond

// Predicate reports whether a candidate field value is acceptable.
type Predicate[T any] func(T) bool

// Numeric constrains the numeric predicate helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// All combines predicates conjunctively: every one must accept the value.
// With no predicates it accepts everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Any combines predicates disjunctively: at least one must accept the
// value. With no predicates it rejects everything.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !pred(v)
	}
}
