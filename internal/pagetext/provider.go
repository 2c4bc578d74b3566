package pagetext

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Provider extracts the ordered page texts of an uploaded document. A page
// text may be empty; the caller splits pages into lines itself.
type Provider interface {
	Pages(r io.Reader, filename string) ([]string, error)
}

// SupportedExtensions lists the upload formats this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
}

// ForFile returns the appropriate provider for a filename.
func ForFile(filename string) (Provider, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFProvider{}, nil
	case ".txt":
		return &TextProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
