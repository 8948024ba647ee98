package precond

// OneOf accepts values equal to one of the allowed choices.
func OneOf[T comparable](allowed ...T) Predicate[T] {
	return func(v T) bool {
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// NoneOf accepts values equal to none of the forbidden choices.
func NoneOf[T comparable](forbidden ...T) Predicate[T] {
	return func(v T) bool {
		for _, f := range forbidden {
			if v == f {
				return false
			}
		}
		return true
	}
}
