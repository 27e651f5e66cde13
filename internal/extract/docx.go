package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDocx reads the OOXML container and extracts paragraph text from
// word/document.xml, joining paragraphs with a blank-line separator. Any
// malformed container or missing document part fails with
// ErrUnsupportedContent.
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a valid docx archive: %v", ErrUnsupportedContent, err)
	}

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("%w: open document part: %v", ErrUnsupportedContent, err)
			}
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: docx missing word/document.xml", ErrUnsupportedContent)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc)
	if err != nil {
		return "", fmt.Errorf("%w: parse document part: %v", ErrUnsupportedContent, err)
	}
	return strings.Join(paragraphs, pageSeparator), nil
}

// docxParagraphs streams the WordprocessingML body, collecting the text runs
// (<w:t>) of each paragraph (<w:p>). Tokens are streamed rather than decoded
// into a struct so arbitrarily large documents stay cheap.
func docxParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "t":
				inText = inPara
			case "tab":
				if inPara {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if inPara {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inPara {
					if s := current.String(); strings.TrimSpace(s) != "" {
						paragraphs = append(paragraphs, s)
					}
				}
				inPara = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
