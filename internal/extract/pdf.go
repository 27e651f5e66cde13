package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the text layer of every page and joins pages with a
// blank-line separator. A PDF without any extractable text layer (scans,
// image-only pages) fails with ErrUnsupportedContent.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables;
	// treat those the same as a parse error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed pdf: %v", ErrUnsupportedContent, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedContent, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not invalidate the document.
			continue
		}
		if strings.TrimSpace(content) != "" {
			pages = append(pages, content)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("%w: pdf has no text layer", ErrUnsupportedContent)
	}
	return strings.Join(pages, pageSeparator), nil
}
