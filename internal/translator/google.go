package translator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/valpere/polyglot/internal"
)

// DefaultGoogleEndpoint is the unofficial "gtx" web endpoint. Its response is
// an array whose first element lists sentence groups of
// [translated, original, ...] segments; element 2 is the detected language.
const DefaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

type GoogleService struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

func NewGoogleService(cfg ServiceConfig) *GoogleService {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultGoogleEndpoint
	}
	return &GoogleService{
		endpoint:  endpoint,
		userAgent: cfg.UserAgent,
		client:    newHTTPClient(cfg.Timeout),
	}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, req internal.TranslationRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name(), Metadata: map[string]string{}}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = "auto"
	}

	apiURL := fmt.Sprintf("%s?client=gtx&sl=%s&tl=%s&dt=t&q=%s",
		s.endpoint,
		url.QueryEscape(sourceLang),
		url.QueryEscape(req.TargetLang),
		url.QueryEscape(req.Text))

	body, err := get(ctx, s.client, apiURL, s.userAgent)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	text, detected, err := extractGoogleTranslation(body)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.TranslatedText = text
	if detected != "" {
		result.Metadata["detected_source"] = detected
	}

	return result, nil
}

// extractGoogleTranslation returns root[0][0][0] and, when present, the
// detected source language at root[2]. Only the first segment is returned
// even when the service split the input into several sentences.
func extractGoogleTranslation(body []byte) (string, string, error) {
	if !gjson.ValidBytes(body) {
		return "", "", &ResponseFormatError{Reason: "body is not valid JSON"}
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return "", "", &ResponseFormatError{Reason: "root is not an array"}
	}
	if groups := root.Get("0"); !groups.IsArray() {
		return "", "", &ResponseFormatError{Reason: "missing sentence groups at [0]"}
	}
	if segment := root.Get("0.0"); !segment.IsArray() {
		return "", "", &ResponseFormatError{Reason: "missing first segment at [0][0]"}
	}

	translated := root.Get("0.0.0")
	if !translated.Exists() || translated.Type == gjson.Null {
		return "", "", &ResponseFormatError{Reason: "missing translated text at [0][0][0]"}
	}

	var detected string
	if lang := root.Get("2"); lang.Type == gjson.String {
		detected = lang.String()
	}

	return translated.String(), detected, nil
}
