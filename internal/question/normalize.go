package question

import "strings"

// NormalizeAnswerText lowercases an answer for matching. Whitespace is kept,
// so " paris" and "paris" are different answers.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(value)
}
