package display

import (
	"os"
	"path/filepath"
	"strings"
)

// IconSet is an immutable route-to-icon lookup built once at construction
// from a directory listing. The layout engine only consumes the yes/no
// answer; renderers resolve the key to an actual asset.
type IconSet struct {
	keys map[string]struct{}
}

var iconExtensions = map[string]bool{".png": true, ".svg": true}

// LoadIconSet scans dir for route badge assets. A missing or unreadable
// directory yields an empty set; the board just uses text badges.
func LoadIconSet(dir string) *IconSet {
	set := &IconSet{keys: make(map[string]struct{})}
	if dir == "" {
		return set
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return set
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !iconExtensions[ext] {
			continue
		}
		name := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		set.keys[name] = struct{}{}
	}
	return set
}

// Lookup resolves a route short name to an icon key. Candidates are tried in
// order: the raw name, the alphanumeric-only form, then its first character
// (multi-letter ids like "NQRW" share one bullet).
func (s *IconSet) Lookup(routeShortName string) (string, bool) {
	if s == nil || len(s.keys) == 0 {
		return "", false
	}
	raw := strings.ToLower(strings.TrimSpace(routeShortName))
	if raw == "" {
		return "", false
	}

	candidates := []string{raw}
	if alnum := stripNonAlnum(raw); alnum != "" && alnum != raw {
		candidates = append(candidates, alnum)
	}
	if alnum := stripNonAlnum(raw); alnum != "" {
		first := alnum[:1]
		if first != raw {
			candidates = append(candidates, first)
		}
	}

	for _, candidate := range candidates {
		if _, ok := s.keys[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
