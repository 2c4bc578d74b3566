package pagetext

import (
	"fmt"
	"io"
	"strings"
)

// TextProvider handles pre-extracted invoice text. Form feeds separate pages,
// matching the convention of pdftotext-style exports; a file without form
// feeds is a single page.
type TextProvider struct{}

func (p *TextProvider) Pages(r io.Reader, filename string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return strings.Split(string(data), "\f"), nil
}
