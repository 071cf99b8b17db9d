// Package args parses the polyglot command line: a "[source]=[target]"
// specifier followed by optional free text.
package args

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/valpere/polyglot/internal"
)

const (
	maxSourceLen = 2
	targetLen    = 2
)

// ArgumentError reports a command line that matches neither the help flag nor
// the language-pair specifier.
type ArgumentError struct {
	Token  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid argument: %s", e.Reason)
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Token, e.Reason)
}

// Invocation is the outcome of a successful parse.
type Invocation struct {
	Help    bool
	Request internal.TranslationRequest
}

// Parser turns command-line tokens into an Invocation.
type Parser struct {
	// Stdin supplies the text when only the specifier is given.
	Stdin io.Reader
	// DefaultSource is consulted when the specifier leaves the source empty.
	DefaultSource func() string
}

// IsHelp reports whether token is one of the literal help flags.
func IsHelp(token string) bool {
	return token == "-?" || token == "--help"
}

// Parse reads argv (program name excluded). Stdin is read at most once, and
// only when argv holds nothing but a valid specifier.
func (p *Parser) Parse(argv []string) (Invocation, error) {
	help, err := Check(argv)
	if err != nil {
		return Invocation{}, err
	}
	if help {
		return Invocation{Help: true}, nil
	}

	source, target, err := ParseSpecifier(argv[0])
	if err != nil {
		return Invocation{}, err
	}

	if source == "" && p.DefaultSource != nil {
		source = p.DefaultSource()
	}

	var text string
	if len(argv) == 1 {
		text, err = p.readLine()
		if err != nil {
			return Invocation{}, fmt.Errorf("failed to read text from stdin: %w", err)
		}
	} else {
		text = strings.Join(argv[1:], " ")
	}

	return Invocation{
		Request: internal.TranslationRequest{
			SourceLang: source,
			TargetLang: target,
			Text:       text,
		},
	}, nil
}

// Check validates the first token without touching stdin or any default
// source. It reports whether help was requested.
func Check(argv []string) (bool, error) {
	if len(argv) == 0 {
		return false, &ArgumentError{Reason: "missing [source]=[target] specifier"}
	}
	if IsHelp(argv[0]) {
		return true, nil
	}
	if _, _, err := ParseSpecifier(argv[0]); err != nil {
		return false, err
	}
	return false, nil
}

// ParseSpecifier splits a "[source]=[target]" token. The source may hold 0-2
// letters, the target exactly 2.
func ParseSpecifier(token string) (source, target string, err error) {
	source, target, found := strings.Cut(token, "=")
	if !found {
		return "", "", &ArgumentError{Token: token, Reason: "expected [source]=[target]"}
	}

	if n := utf8.RuneCountInString(source); n > maxSourceLen || !isLetters(source) {
		return "", "", &ArgumentError{Token: token, Reason: "source language must be 0-2 letters"}
	}
	if n := utf8.RuneCountInString(target); n != targetLen || !isLetters(target) {
		return "", "", &ArgumentError{Token: token, Reason: "target language must be exactly 2 letters"}
	}

	return source, target, nil
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func (p *Parser) readLine() (string, error) {
	if p.Stdin == nil {
		return "", nil
	}

	line, err := bufio.NewReader(p.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
