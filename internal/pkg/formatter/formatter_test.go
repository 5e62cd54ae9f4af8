package formatter

import (
	"os"
	"strings"
	"testing"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

func TestFactoryCreatesKnownFormats(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		format      entity.ResultFormat
		extension   string
		contentType string
	}{
		{entity.FormatMarkdown, ".md", "text/markdown; charset=utf-8"},
		{entity.FormatPDF, ".pdf", "application/pdf"},
		{entity.FormatDOCX, ".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tc := range cases {
		fm, err := factory.Create(tc.format)
		if err != nil {
			t.Fatalf("Create(%s): unexpected error: %v", tc.format, err)
		}
		if fm.FileExtension() != tc.extension {
			t.Errorf("Create(%s): extension %q, want %q", tc.format, fm.FileExtension(), tc.extension)
		}
		if fm.ContentType() != tc.contentType {
			t.Errorf("Create(%s): content type %q, want %q", tc.format, fm.ContentType(), tc.contentType)
		}
	}
}

func TestFactoryRejectsUnknownFormat(t *testing.T) {
	_, err := NewFactory().Create(entity.ResultFormat("xlsx"))
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestMarkdownFormatterWrapsBody(t *testing.T) {
	out, err := NewMarkdownFormatter().Format("## Summary\n\nEngineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(out)
	if !strings.HasPrefix(text, "# Optimized Resume\n") {
		t.Errorf("missing title, got %q", text)
	}
	if !strings.Contains(text, "## Summary") {
		t.Errorf("body missing, got %q", text)
	}
}

func TestPDFFormatterProducesDocument(t *testing.T) {
	out, err := NewPDFFormatter().Format("## Summary\n\nSeasoned Go engineer.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty PDF output")
	}
	if !strings.HasPrefix(string(out), "%PDF") {
		t.Errorf("output does not start with PDF magic, got %q", string(out[:8]))
	}
}

func TestDOCXFormatterProducesDocument(t *testing.T) {
	// unioffice refuses to render without a configured license key.
	if os.Getenv("UNIDOC_LICENSE_API_KEY") == "" {
		t.Skip("UNIDOC_LICENSE_API_KEY not set")
	}

	out, err := NewDOCXFormatter().Format("## Summary\n\nSeasoned Go engineer.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty DOCX output")
	}
	// DOCX files are zip archives.
	if out[0] != 'P' || out[1] != 'K' {
		t.Errorf("output does not start with zip magic, got % x", out[:2])
	}
}
