// Package extract converts raw file bytes into plain text according to the
// declared MIME type. All extraction is a pure transform over buffered input;
// the caller owns any temporary file lifetime.
package extract

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFileType is returned for MIME types outside the four
	// recognized content families.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrUnsupportedContent is returned when a recognized container holds no
	// extractable text (no text layer, malformed archive).
	ErrUnsupportedContent = errors.New("no extractable text content")
	// ErrExtractionTooShort is returned when a best-effort legacy .doc scrub
	// yields fewer than minLegacyDocChars printable characters.
	ErrExtractionTooShort = errors.New("extracted text too short")
)

// Kind is the closed set of content families the extractor handles.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindDocx
	KindText
	KindLegacyDoc
)

// minLegacyDocChars is the floor below which a scrubbed legacy .doc is
// considered unreadable.
const minLegacyDocChars = 50

// pageSeparator joins extracted PDF pages and DOCX paragraphs.
const pageSeparator = "\n\n"

// Classify maps a declared MIME type onto a content family. This is the only
// place MIME strings are inspected; everything downstream dispatches on Kind.
func Classify(mimeType string) Kind {
	switch mimeType {
	case "application/pdf":
		return KindPDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return KindDocx
	case "text/plain", "text/markdown":
		return KindText
	case "application/msword":
		return KindLegacyDoc
	default:
		return KindUnsupported
	}
}

// Extract returns the plain-text content of data for the given MIME type.
func Extract(data []byte, mimeType string) (string, error) {
	switch Classify(mimeType) {
	case KindPDF:
		return extractPDF(data)
	case KindDocx:
		return extractDocx(data)
	case KindText:
		return string(data), nil
	case KindLegacyDoc:
		return extractLegacyDoc(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
}

// extractLegacyDoc is a best-effort scrub of the legacy binary .doc format:
// keep printable ASCII plus whitespace, collapse whitespace runs, trim.
func extractLegacyDoc(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if c >= 0x20 && c <= 0x7e {
			b.WriteByte(c)
		} else {
			// Whitespace and binary noise alike become a single separator
			// once runs are collapsed below.
			b.WriteByte(' ')
		}
	}
	cleaned := strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
	if len(cleaned) < minLegacyDocChars {
		return "", ErrExtractionTooShort
	}
	return cleaned, nil
}
