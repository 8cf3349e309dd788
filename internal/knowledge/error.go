package knowledge

// AssertionError marks a violated invariant: a sentence with a negative
// or oversized count, a contradictory fact, or an empty sentence that
// still claims mines. Any of these means upstream input was inconsistent
// and further inference would be unsound, so they panic rather than
// return.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
