package slot

import (
	"strings"

	"golang.org/x/text/cases"
)

// NameKey folds a slot name for case-insensitive comparison:
// surrounding blanks trimmed, inner runs of whitespace collapsed.
// A Caser is stateful, so each call gets its own.
func NameKey(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}
