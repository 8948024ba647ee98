package precond

import (
	"regexp"
	"strings"
)

// NonEmpty accepts strings that contain more than whitespace.
func NonEmpty() Predicate[string] {
	return func(v string) bool {
		return strings.TrimSpace(v) != ""
	}
}

func MinLen(min int) Predicate[string] {
	return func(v string) bool {
		return len(v) >= min
	}
}

func MaxLen(max int) Predicate[string] {
	return func(v string) bool {
		return len(v) <= max
	}
}

func LenBetween(min, max int) Predicate[string] {
	return func(v string) bool {
		return len(v) >= min && len(v) <= max
	}
}

// Matches accepts strings matched by the given expression. Compile the
// expression once at declaration time and share it.
func Matches(re *regexp.Regexp) Predicate[string] {
	return func(v string) bool {
		return re.MatchString(v)
	}
}

func HasPrefix(prefix string) Predicate[string] {
	return func(v string) bool {
		return strings.HasPrefix(v, prefix)
	}
}

func HasSuffix(suffix string) Predicate[string] {
	return func(v string) bool {
		return strings.HasSuffix(v, suffix)
	}
}
