package precond

// Min accepts values greater than or equal to the minimum.
func Min[T Numeric](min T) Predicate[T] {
	return func(v T) bool {
		return v >= min
	}
}

// Max accepts values less than or equal to the maximum.
func Max[T Numeric](max T) Predicate[T] {
	return func(v T) bool {
		return v <= max
	}
}

// Between accepts values in the inclusive range [min, max].
func Between[T Numeric](min, max T) Predicate[T] {
	return func(v T) bool {
		return v >= min && v <= max
	}
}

func Positive[T Numeric]() Predicate[T] {
	return func(v T) bool {
		return v > 0
	}
}

func NonNegative[T Numeric]() Predicate[T] {
	return func(v T) bool {
		return v >= 0
	}
}

func NonZero[T Numeric]() Predicate[T] {
	var zero T
	return func(v T) bool {
		return v != zero
	}
}
