package args

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// countingReader records how many times Read was called.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func newParser(stdin string) (*Parser, *countingReader) {
	cr := &countingReader{r: strings.NewReader(stdin)}
	return &Parser{
		Stdin:         cr,
		DefaultSource: func() string { return "en" },
	}, cr
}

func TestParseSpecifier_Valid(t *testing.T) {
	tests := []struct {
		token      string
		wantSource string
		wantTarget string
	}{
		{token: "=it", wantSource: "", wantTarget: "it"},
		{token: "e=it", wantSource: "e", wantTarget: "it"},
		{token: "en=it", wantSource: "en", wantTarget: "it"},
		{token: "it=ru", wantSource: "it", wantTarget: "ru"},
		{token: "EN=DE", wantSource: "EN", wantTarget: "DE"},
		{token: "=ук", wantSource: "", wantTarget: "ук"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			source, target, err := ParseSpecifier(tt.token)
			if err != nil {
				t.Fatalf("ParseSpecifier(%q) unexpected error: %v", tt.token, err)
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
			if target != tt.wantTarget {
				t.Errorf("target = %q, want %q", target, tt.wantTarget)
			}
		})
	}
}

func TestParseSpecifier_Invalid(t *testing.T) {
	tokens := []string{
		"",
		"it",
		"en-it",
		"en=",
		"=",
		"=i",
		"en=i",
		"=rus",
		"it=rus",
		"eng=it",
		"=i1",
		"1=it",
		"e n=it",
		"-h",
		"-?x",
		"--HELP",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			_, _, err := ParseSpecifier(token)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("ParseSpecifier(%q) error = %v, want *ArgumentError", token, err)
			}
			if argErr.Token != token {
				t.Errorf("error token = %q, want %q", argErr.Token, token)
			}
		})
	}
}

func TestParser_Help(t *testing.T) {
	tests := [][]string{
		{"-?"},
		{"--help"},
		{"-?", "ignored", "tokens"},
		{"--help", "=it", "Hi"},
	}

	for _, argv := range tests {
		t.Run(strings.Join(argv, " "), func(t *testing.T) {
			p, stdin := newParser("should not be read\n")

			inv, err := p.Parse(argv)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !inv.Help {
				t.Error("expected help to be requested")
			}
			if stdin.reads != 0 {
				t.Errorf("expected stdin untouched, got %d reads", stdin.reads)
			}
		})
	}
}

func TestParser_InlineText(t *testing.T) {
	p, stdin := newParser("from stdin\n")

	inv, err := p.Parse([]string{"=it", "Hi", "there"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Help {
		t.Fatal("did not expect help")
	}
	if inv.Request.Text != "Hi there" {
		t.Errorf("expected text 'Hi there', got %q", inv.Request.Text)
	}
	if inv.Request.TargetLang != "it" {
		t.Errorf("expected target 'it', got %q", inv.Request.TargetLang)
	}
	if stdin.reads != 0 {
		t.Errorf("expected stdin untouched, got %d reads", stdin.reads)
	}
}

func TestParser_InlineTextKeepsPunctuation(t *testing.T) {
	p, _ := newParser("")

	inv, err := p.Parse([]string{"en=it", "Hi,", "how", "are", "you?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Request.Text != "Hi, how are you?" {
		t.Errorf("expected 'Hi, how are you?', got %q", inv.Request.Text)
	}
	if inv.Request.SourceLang != "en" {
		t.Errorf("expected explicit source 'en', got %q", inv.Request.SourceLang)
	}
}

func TestParser_TextFromStdin(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{name: "single line", stdin: "Hi, how are you?\n", want: "Hi, how are you?"},
		{name: "only first line", stdin: "first\nsecond\n", want: "first"},
		{name: "crlf", stdin: "windows line\r\n", want: "windows line"},
		{name: "no trailing newline", stdin: "unterminated", want: "unterminated"},
		{name: "empty", stdin: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newParser(tt.stdin)

			inv, err := p.Parse([]string{"it=ru"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv.Request.Text != tt.want {
				t.Errorf("expected text %q, got %q", tt.want, inv.Request.Text)
			}
		})
	}
}

func TestParser_DefaultSource(t *testing.T) {
	calls := 0
	p := &Parser{
		DefaultSource: func() string {
			calls++
			return "uk"
		},
	}

	inv, err := p.Parse([]string{"=it", "Hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Request.SourceLang != "uk" {
		t.Errorf("expected locale source 'uk', got %q", inv.Request.SourceLang)
	}
	if calls != 1 {
		t.Errorf("expected DefaultSource called once, got %d", calls)
	}

	inv, err = p.Parse([]string{"de=it", "Hallo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Request.SourceLang != "de" {
		t.Errorf("expected explicit source 'de', got %q", inv.Request.SourceLang)
	}
	if calls != 1 {
		t.Errorf("expected DefaultSource not consulted for explicit source, got %d calls", calls)
	}
}

func TestParser_InvalidSpecifierSkipsStdin(t *testing.T) {
	p, stdin := newParser("text\n")

	_, err := p.Parse([]string{"=i"})
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %v", err)
	}
	if stdin.reads != 0 {
		t.Errorf("expected stdin untouched, got %d reads", stdin.reads)
	}
}

func TestParser_NoArguments(t *testing.T) {
	p, _ := newParser("")

	_, err := p.Parse(nil)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestParser_StdinError(t *testing.T) {
	p := &Parser{Stdin: failingReader{}}

	_, err := p.Parse([]string{"en=it"})
	if err == nil {
		t.Fatal("expected error from failing stdin")
	}
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		t.Error("stdin failure should not be reported as an argument error")
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantHelp bool
		wantErr  bool
	}{
		{name: "help", argv: []string{"-?", "=i"}, wantHelp: true},
		{name: "long help", argv: []string{"--help"}, wantHelp: true},
		{name: "valid specifier", argv: []string{"=it"}},
		{name: "valid with text", argv: []string{"en=it", "Hi"}},
		{name: "short target", argv: []string{"=i", "Hi"}, wantErr: true},
		{name: "no arguments", argv: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			help, err := Check(tt.argv)
			if help != tt.wantHelp {
				t.Errorf("Check(%q) help = %v, want %v", tt.argv, help, tt.wantHelp)
			}
			var argErr *ArgumentError
			if tt.wantErr != errors.As(err, &argErr) {
				t.Errorf("Check(%q) error = %v, wantErr %v", tt.argv, err, tt.wantErr)
			}
		})
	}
}
