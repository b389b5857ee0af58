// Package sanitize strips script tags and disallowed markup from free-text
// fields before they are mapped onto entities.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// richText allows the markup a post body or image description may carry:
	// common formatting plus images and links, never scripts or event handlers.
	richText = bluemonday.UGCPolicy()

	// plainText strips every tag; used for titles and comment bodies.
	plainText = bluemonday.StrictPolicy()
)

// RichText sanitizes HTML content, keeping user-generated-content markup.
// Sanitizing twice yields the same result as sanitizing once.
func RichText(s string) string {
	return strings.TrimSpace(richText.Sanitize(s))
}

// PlainText removes all markup and trims surrounding whitespace.
func PlainText(s string) string {
	return strings.TrimSpace(plainText.Sanitize(s))
}
