package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"skillnuron/internal/domain/resume"
)

// buildDocx assembles the minimal archive the docx reader accepts: the
// document body plus an empty relationships part.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
	relsXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": relsXML,
	} {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.Bytes()
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	cases := []string{"resume.txt", "resume.doc", "resume", "resume.pdf.exe", ""}

	for _, name := range cases {
		if _, err := Extract([]byte("irrelevant"), name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("%q: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestExtract_ExtensionCaseInsensitive(t *testing.T) {
	// Uppercase extensions pick the right parser; garbage bytes then fail
	// inside it rather than being rejected as an unsupported format.
	if _, err := Extract([]byte("garbage"), "resume.PDF"); !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for .PDF, got %v", err)
	}
	if _, err := Extract([]byte("garbage"), "resume.DOCX"); !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for .DOCX, got %v", err)
	}
}

func TestExtract_DocxPlainText(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>Developed distributed ingestion services.</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Managed platform reliability reviews.</w:t></w:r></w:p>`)

	text, err := Extract(data, "resume.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(text, "<") {
		t.Fatalf("markup leaked into extracted text: %q", text)
	}
	want := "Developed distributed ingestion services.\nManaged platform reliability reviews.\n"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
}

func TestExtract_EmptyDocxFailsLengthCheck(t *testing.T) {
	// The document part alone is ~200 bytes of markup; only run text may
	// count toward the analyzer's minimum length.
	data := buildDocx(t, `<w:p><w:r><w:t></w:t></w:r></w:p>`)

	text, err := Extract(data, "resume.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Fatalf("expected no text from an empty document, got %q", text)
	}
	if _, err := resume.Analyze(text); !errors.Is(err, resume.ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort for empty docx, got %v", err)
	}
}

func TestExtract_CorruptPayloads(t *testing.T) {
	if _, err := Extract([]byte("not really a pdf"), "resume.pdf"); !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for corrupt pdf, got %v", err)
	}
	if _, err := Extract([]byte("not really a zip archive"), "resume.docx"); !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for corrupt docx, got %v", err)
	}
	if _, err := Extract(nil, "resume.pdf"); !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for empty payload, got %v", err)
	}
}
