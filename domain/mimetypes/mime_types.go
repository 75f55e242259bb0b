package mimetypes

import (
	"mime"
	"slices"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextHTML  MIME = "text/html"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWebP MIME = "image/webp"
	ImageSVG  MIME = "image/svg+xml"
)

// Drawings are the raster formats a canvas export can produce.
var Drawings = []MIME{ImagePNG, ImageJPEG, ImageGIF, ImageWebP}

// Parse drops the parameters of a detected media type.
func Parse(detected string) MIME {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt := Parse(detected)
	if mt == Unknown {
		return Unknown, false
	}
	return expected, mt == expected
}

// IsDrawing reports whether detected is one of the accepted drawing formats.
func IsDrawing(detected string) (MIME, bool) {
	mt := Parse(detected)
	return mt, slices.Contains(Drawings, mt)
}
