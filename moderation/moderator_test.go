package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const defaultReplacement = '*'

func embeddedModerator(t *testing.T, replacement rune) Moderator {
	t.Helper()
	dictionary, err := NewEmbeddedLoader().LoadAll("censored")
	require.NoError(t, err)
	mod, err := NewModerator(dictionary.Words, replacement, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return mod
}

func TestModerator_Censor_PromptsAndGuesses(t *testing.T) {
	req := require.New(t)
	mod := embeddedModerator(t, defaultReplacement)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "English prompt",
			input:    "a fuck you sign",
			expected: "a **** you sign",
			words:    []string{"fuck"},
		},
		{
			name:     "French guess",
			input:    "un chat qui dit merde",
			expected: "un chat qui dit *****",
			words:    []string{"merde"},
		},
		{
			name:     "Leet speak",
			input:    "sh1t happens",
			expected: "**** happens",
			words:    []string{"shit"},
		},
		{
			name: "Letters split by dots",
			// 7 letters and 6 dots
			input:    "B.A.S.T.A.R.D on a bike",
			expected: "************* on a bike",
			words:    []string{"bastard"},
		},
		{
			name:     "Both languages in one guess",
			input:    "bitch please, quel bordel",
			expected: "***** please, quel ******",
			words:    []string{"bitch", "bordel"},
		},
		{
			name:     "Accents are kept",
			input:    "Un été sans merde",
			expected: "Un été sans *****",
			words:    []string{"merde"},
		},
		{
			name:     "Clean prompt",
			input:    "a cat riding a bicycle",
			expected: "a cat riding a bicycle",
			words:    nil,
		},
		{
			name:     "Punctuation only",
			input:    "?!",
			expected: "?!",
			words:    nil,
		},
		{
			name:     "Empty guess",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_Censor_CustomReplacement(t *testing.T) {
	req := require.New(t)

	// Given CHARACTER_REPLACEMENT set to '#'
	mod := embeddedModerator(t, '#')

	// When a guess is censored
	content, words := mod.Censor("what the fuck")

	// Then the replacement rune is used
	req.Equal("what the ####", content)
	req.Equal([]string{"fuck"}, words)
}

func TestModerator_NoiseEntriesAreIgnored(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a word list with noise-only lines
	mod, err := NewModerator([]string{"...", ",,,", "", "merde"}, defaultReplacement, log)
	req.NoError(err)

	// Then real words are still censored
	content, words := mod.Censor("oh merde")
	req.Equal("oh *****", content)
	req.Equal([]string{"merde"}, words)

	// And punctuation in a guess is left alone
	content, words = mod.Censor("dessin ...")
	req.Equal("dessin ...", content)
	req.Nil(words)
}
