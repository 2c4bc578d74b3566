package pagetext

import (
	"strings"
	"testing"
)

func TestTextProvider_SinglePage(t *testing.T) {
	p := &TextProvider{}
	pages, err := p.Pages(strings.NewReader("line one\nline two"), "invoice.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0] != "line one\nline two" {
		t.Errorf("page text: got %q", pages[0])
	}
}

func TestTextProvider_FormFeedSplitsPages(t *testing.T) {
	p := &TextProvider{}
	pages, err := p.Pages(strings.NewReader("page one\fpage two\fpage three"), "invoice.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[1] != "page two" {
		t.Errorf("page 2: got %q", pages[1])
	}
}

func TestTextProvider_EmptyInput(t *testing.T) {
	p := &TextProvider{}
	pages, err := p.Pages(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One empty page, which downstream treats as zero data lines.
	if len(pages) != 1 || pages[0] != "" {
		t.Fatalf("expected one empty page, got %#v", pages)
	}
}

func TestForFile_Dispatch(t *testing.T) {
	if _, err := ForFile("a.pdf"); err != nil {
		t.Errorf("pdf: unexpected error %v", err)
	}
	if _, err := ForFile("A.TXT"); err != nil {
		t.Errorf("txt (upper case): unexpected error %v", err)
	}
	if _, err := ForFile("a.docx"); err == nil {
		t.Error("docx: expected an unsupported-extension error")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("发票.pdf") {
		t.Error("expected .pdf to be supported")
	}
	if IsSupportedExtension("invoice.xlsx") {
		t.Error("expected .xlsx to be unsupported")
	}
}
