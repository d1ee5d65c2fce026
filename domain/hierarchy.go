package domain

import (
	"slices"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Hierarchy returns the ancestor chain of the name, from the root up to the
// name itself. "www.example.com" yields ".", "com", "example.com",
// "www.example.com".
func (n Name) Hierarchy() []Name {
	chain := []Name{Root()}
	if n.IsZero() || n.IsRoot() {
		return chain
	}
	for i := len(n.labels) - 1; i >= 0; i-- {
		chain = append(chain, Name{labels: slices.Clone(n.labels[i:])})
	}
	return chain
}

// Apex returns the effective TLD plus one for the name, per the public
// suffix list. When the name has no registrable apex (a bare TLD, the root)
// the name itself is returned.
func (n Name) Apex() Name {
	if n.IsZero() || n.IsRoot() {
		return n
	}
	apex, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(n.String()))
	if err != nil {
		return n
	}
	name, err := NewName(strings.Split(apex, "."))
	if err != nil {
		return n
	}
	return name
}
