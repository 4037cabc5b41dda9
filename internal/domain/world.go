package domain

import "strings"

// WorldEntry is one save-data directory on the device. ID is the stable
// directory name, Name the human-readable title read from the world's
// metadata file (may be empty when the metadata was unreadable).
type WorldEntry struct {
	ID         string
	Name       string
	RemotePath string
}

func (w WorldEntry) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.ID
}

// SanitizeName turns a display name into a filesystem-safe token: whitespace
// runs collapse to a single space, the result is trimmed, and anything
// outside a conservative safe set becomes an underscore. An empty result
// falls back to the given identifier.
func SanitizeName(name, fallback string) string {
	name = strings.Join(strings.Fields(name), " ")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.TrimSpace(b.String())
	if strings.Trim(out, "_ .") == "" {
		return fallback
	}
	return out
}
