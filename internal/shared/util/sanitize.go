package util

import "strings"

const maxFileNameRunes = 128

// BaseFileName strips any client-side directory prefix (either separator)
// and bounds the length so the name is safe to log.
func BaseFileName(name string) string {
	s := strings.TrimSpace(name)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	if r := []rune(s); len(r) > maxFileNameRunes {
		s = string(r[len(r)-maxFileNameRunes:])
	}
	return s
}
