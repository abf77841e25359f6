package engine

// RequiredScore returns the score threshold that must be met before the
// given level can be completed.
func RequiredScore(level int) int {
	switch {
	case level <= 5:
		return level * 1000
	case level <= 10:
		return level * 2000
	case level <= 50:
		return level * 3000
	default:
		return level * 5000
	}
}
