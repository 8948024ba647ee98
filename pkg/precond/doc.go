// Package precond provides a composable vocabulary of typed precondition
// predicates for record field declarations: small, pure functions over a
// candidate value that report whether the value is acceptable.
//
// Predicates carry no error metadata on purpose. The record engine owns
// error attribution, reporting a failed precondition against the field it
// guards, so a predicate only has to answer yes or no. That keeps every
// helper a plain closure that can also be used on its own.
//
// # Architecture
//
// Each source file groups a family of predicates for one value domain
// (numeric.go, string.go, choice.go, time.go, uuid.go). Every exported
// function constructs and returns a Predicate; there is no hidden state, so
// the package is stateless and goroutine-safe. The combinators All, Any and
// Not compose predicates of the same type.
//
// # Usage
//
//	recordkit.Define("Person").
//	    Field(recordkit.F[string]("name", "The name", precond.NonEmpty())).
//	    Field(recordkit.F[int]("age", "The person's age", precond.Between(0, 150))).
//	    Field(recordkit.F[float64]("income", "The person's income", precond.NonNegative[float64]())).
//	    MustBuild()
//
// Combining predicates:
//
//	precond.All(precond.MinLen(3), precond.MaxLen(12))
//	precond.Any(precond.OneOf("n/a"), precond.MinLen(3))
//	precond.Not(precond.OneOf("root", "admin"))
//
// # Performance Considerations
//
// All helpers are simple comparisons or pattern checks. Expensive checks
// (network lookups, database reads) do not belong in a precondition; run
// them before construction instead.
package precond
