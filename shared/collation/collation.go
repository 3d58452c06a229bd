// Package collation orders display names the way a Japanese-locale UI does.
package collation

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares strings with Japanese collation rules.
// A Collator is not safe for concurrent use; create one per computation.
type Collator struct {
	c *collate.Collator
}

func New() *Collator {
	return &Collator{c: collate.New(language.Japanese)}
}

// Compare returns -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}
