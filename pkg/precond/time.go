package precond

import "time"

func Before(t time.Time) Predicate[time.Time] {
	return func(v time.Time) bool {
		return v.Before(t)
	}
}

func After(t time.Time) Predicate[time.Time] {
	return func(v time.Time) bool {
		return v.After(t)
	}
}

func NotZeroTime() Predicate[time.Time] {
	return func(v time.Time) bool {
		return !v.IsZero()
	}
}

// Past accepts instants strictly before the evaluation time.
func Past() Predicate[time.Time] {
	return func(v time.Time) bool {
		return v.Before(time.Now())
	}
}

// Future accepts instants strictly after the evaluation time.
func Future() Predicate[time.Time] {
	return func(v time.Time) bool {
		return v.After(time.Now())
	}
}
