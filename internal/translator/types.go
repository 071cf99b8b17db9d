package translator

import (
	"context"
	"time"

	"github.com/valpere/polyglot/internal"
)

type ServiceConfig struct {
	Endpoint  string        `mapstructure:"endpoint" json:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout"`
	UserAgent string        `mapstructure:"user_agent" json:"user_agent"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Metadata       map[string]string `json:"metadata"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

// TranslationService performs exactly one round-trip per Translate call.
type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req internal.TranslationRequest) (*ServiceResult, error)
}
