package internal

// TranslationRequest is one translation direction plus the text to send.
// SourceLang is empty only until the caller's default has been substituted.
type TranslationRequest struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Text       string `json:"text"`
}
