// Package combinators defines combinator functions such as Or.
package combinators

// StringOr returns s if it is non-empty. Otherwise, it returns the provided
// default.
func StringOr(s, orDefault string) string {
	return Or(s, orDefault)
}

// Or returns v unless it is the zero value of its type, in which case it
// returns orDefault.
func Or[T comparable](v, orDefault T) T {
	var zero T
	if v == zero {
		return orDefault
	}
	return v
}
