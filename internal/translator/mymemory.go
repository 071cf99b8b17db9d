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

const DefaultMyMemoryEndpoint = "https://api.mymemory.translated.net/get"

// MyMemoryService is an alternative backend with a documented JSON API.
// The anonymous tier allows about 5000 characters a day.
type MyMemoryService struct {
	endpoint  string
	email     string
	userAgent string
	client    *http.Client
}

func NewMyMemoryService(cfg ServiceConfig, email string) *MyMemoryService {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultMyMemoryEndpoint
	}
	return &MyMemoryService{
		endpoint:  endpoint,
		email:     email,
		userAgent: cfg.UserAgent,
		client:    newHTTPClient(cfg.Timeout),
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, req internal.TranslationRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name(), Metadata: map[string]string{}}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	// MyMemory has no auto-detection.
	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = "en"
	}

	langPair := fmt.Sprintf("%s|%s", sourceLang, req.TargetLang)

	apiURL := fmt.Sprintf("%s?q=%s&langpair=%s",
		s.endpoint,
		url.QueryEscape(req.Text),
		url.QueryEscape(langPair))

	if s.email != "" {
		apiURL += fmt.Sprintf("&de=%s", url.QueryEscape(s.email))
	}

	body, err := get(ctx, s.client, apiURL, s.userAgent)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	text, err := extractMyMemoryTranslation(body)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.TranslatedText = text
	return result, nil
}

func extractMyMemoryTranslation(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", &ResponseFormatError{Reason: "body is not valid JSON"}
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return "", &ResponseFormatError{Reason: "root is not an object"}
	}

	// The API reports quota and language errors with HTTP 200 and a status
	// field in the body.
	if status := root.Get("responseStatus"); status.Exists() && status.Int() != http.StatusOK {
		return "", &TransportError{
			StatusCode: int(status.Int()),
			Body:       root.Get("responseDetails").String(),
			Err:        fmt.Errorf("API error: %s", root.Get("responseDetails").String()),
		}
	}

	translated := root.Get("responseData.translatedText")
	if translated.Type != gjson.String {
		return "", &ResponseFormatError{Reason: "missing responseData.translatedText"}
	}
	return translated.String(), nil
}
