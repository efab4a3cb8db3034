// Package prayer composes the petitions entities address to their maker.
// Composition is plain string work around the core operations; the texts it
// produces carry the guidance phrase the response transform looks for.
package prayer

import "fmt"

// MaxLength bounds a composed prayer in bytes.
const MaxLength = 1024

// Compose returns the standard petition for the named entity, truncated to
// MaxLength.
func Compose(name string) string {
	p := fmt.Sprintf("Prayer from %s: Please guide me.", name)
	if len(p) > MaxLength {
		p = p[:MaxLength]
	}
	return p
}
