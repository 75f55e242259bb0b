package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"HTML text", "text/html; charset=utf-8", TextHTML, true},
		{"PNG", "image/png", ImagePNG, true},
		{"JPEG", "image/jpeg", ImageJPEG, true},
		{"Mismatch", "text/plain; charset=utf-8", ImagePNG, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestIsDrawing(t *testing.T) {
	tests := []struct {
		detected string
		mime     MIME
		want     bool
	}{
		{"image/png", ImagePNG, true},
		{"image/jpeg", ImageJPEG, true},
		{"image/gif", ImageGIF, true},
		{"image/webp", ImageWebP, true},
		{"image/svg+xml", ImageSVG, false},
		{"text/plain; charset=utf-8", TextPlain, false},
		{"application/octet-stream", MIME("application/octet-stream"), false},
		{"", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.detected, func(t *testing.T) {
			req := require.New(t)
			got, ok := IsDrawing(tt.detected)
			req.Equal(tt.want, ok)
			req.Equal(tt.mime, got)
		})
	}
}
