package moderation

import "github.com/abadojack/whatlanggo"

// DetectLanguage returns the ISO 639-1 code guessed for text.
// Short prompts give a low confidence guess, it is only used to label logs.
func DetectLanguage(text string) string {
	return whatlanggo.Detect(text).Lang.Iso6391()
}
