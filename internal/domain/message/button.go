package message

import (
	"fmt"
	"strings"
)

// Button is an inline link rendered beneath the delivered message.
type Button struct {
	Label string
	URL   string
}

// Valid reports whether both the label and the url are present.
func (b Button) Valid() bool {
	return strings.TrimSpace(b.Label) != "" && strings.TrimSpace(b.URL) != ""
}

// FilterButtons drops partial entries and trims the rest, keeping on-screen order.
func FilterButtons(buttons []Button) []Button {
	var out []Button
	for _, b := range buttons {
		if !b.Valid() {
			continue
		}
		out = append(out, Button{
			Label: strings.TrimSpace(b.Label),
			URL:   strings.TrimSpace(b.URL),
		})
	}
	return out
}

// ParseButton reads a "Label=URL" pair. Only the first '=' separates the
// label, so query strings in the url survive.
func ParseButton(raw string) (Button, error) {
	label, url, ok := strings.Cut(raw, "=")
	if !ok {
		return Button{}, fmt.Errorf("button %q: expected Label=URL", raw)
	}
	b := Button{Label: strings.TrimSpace(label), URL: strings.TrimSpace(url)}
	if !b.Valid() {
		return Button{}, fmt.Errorf("button %q: label and url must both be set", raw)
	}
	return b, nil
}
