package service

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/go-env-server/models"
)

const commentPrefix = "#"

// ParseLines builds a [models.ConfigMap] from the raw text of a source file.
//
// Every line is trimmed; empty lines and lines starting with "#" are skipped.
// The first "=" separates the key from the value, and the value is kept
// verbatim (further "=" characters belong to it). A line without "=" declares
// its whole content as a key with an unset value. Later duplicates overwrite
// earlier ones.
func ParseLines(text string) *models.ConfigMap {
	m := models.NewConfigMap()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimFunc(line, isTrimmable)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		key, value := parseLine(line)
		m.Set(key, value)
	}

	return m
}

func parseLine(line string) (string, models.ConfigValue) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return line, models.Unset()
	}
	return key, models.Present(value)
}

// isTrimmable also strips a UTF-8 byte order mark left at the start of a file.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
