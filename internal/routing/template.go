package routing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnresolvedPlaceholder is returned when a template still contains a
// placeholder after substitution.
var ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Template is a URL or save-path format string containing named placeholders
// such as {slug}, {date}, {number} or {base_name}.
type Template string

// Placeholders returns the placeholder names in the order they appear.
func (t Template) Placeholders() []string {
	matches := placeholderRe.FindAllStringSubmatch(string(t), -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Substitute fills every placeholder from vars. It fails if any placeholder
// has no value, so a malformed route surfaces at resolve time rather than as
// a broken path in the generated site.
func (t Template) Substitute(vars map[string]string) (string, error) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(string(t), func(ph string) string {
		name := ph[1 : len(ph)-1]
		val, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			return ph
		}
		return val
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q: %w: %s", string(t), ErrUnresolvedPlaceholder, strings.Join(missing, ", "))
	}
	return out, nil
}

// IsZero reports whether the template is the empty string. The engine treats
// an empty template as "flatten into site root", which this package models as
// a disabled route.
func (t Template) IsZero() bool { return t == "" }
