// Package locale resolves the two-letter language code of the running process.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Fallback is returned when the environment names no usable language.
const Fallback = "en"

// envKeys follows POSIX precedence for message catalogs.
var envKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Current returns the ISO 639-1 code of the process locale, or Fallback.
func Current() string {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) string {
	for _, key := range envKeys {
		value := getenv(key)
		if value == "" {
			continue
		}
		// The first non-empty variable wins even when it is unusable.
		if code, ok := Parse(value); ok {
			return code
		}
		return Fallback
	}
	return Fallback
}

// Parse extracts the base language from a POSIX locale string such as
// "it_IT.UTF-8" or "de_DE@euro". It reports false for "C", "POSIX" and
// anything that has no two-letter ISO 639-1 form.
func Parse(value string) (string, bool) {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}

	code := base.String()
	if len(code) != 2 {
		return "", false
	}
	return code, true
}
