// Package schema builds schema.org structured data for embedding in pages as
// JSON-LD. Builders are pure: the same input always yields the same value.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Context is the JSON-LD @context shared by every top-level object.
const Context = "https://schema.org"

// Encode marshals v to compact JSON suitable for a script element. The
// encoder escapes <, > and & so the payload cannot close the element early.
func Encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode json-ld: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Script renders v inside a <script type="application/ld+json"> element. It
// renders nothing when v cannot be encoded.
func Script(v any) g.Node {
	payload, err := Encode(v)
	if err != nil {
		return nil
	}
	return h.Script(h.Type("application/ld+json"), g.Raw(payload))
}

// absoluteURL joins a site origin and a site-relative path. Absolute URLs are
// returned unchanged.
func absoluteURL(origin, href string) (string, error) {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return "", fmt.Errorf("empty path")
	case strings.HasPrefix(href, "https://"), strings.HasPrefix(href, "http://"):
		return href, nil
	case strings.HasPrefix(href, "/"):
		return strings.TrimRight(origin, "/") + href, nil
	default:
		return "", fmt.Errorf("path %q is not absolute", href)
	}
}
