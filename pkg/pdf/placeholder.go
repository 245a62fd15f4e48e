// Package pdf renders the downloadable interview report.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go-interview-backend/internal/domain"
)

// PlaceholderRenderer emits a single-page PDF with an ASCII summary line.
// Report text is Cyrillic and would need an embedded font, so only the
// candidate id, score and decision are printed.
type PlaceholderRenderer struct{}

func NewPlaceholderRenderer() *PlaceholderRenderer {
	return &PlaceholderRenderer{}
}

func (r *PlaceholderRenderer) RenderPDF(ctx context.Context, candidateID string, report *domain.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := []string{"Interview report", "Candidate: " + candidateID}
	if report == nil {
		lines = append(lines, "No report has been generated yet.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Final score: %d", report.FinalScore),
			"Decision: "+string(report.Decision),
			"Generated: "+report.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"),
		)
	}
	return build(lines), nil
}

// build writes a minimal PDF 1.4 file with a correct xref table.
func build(lines []string) []byte {
	var content bytes.Buffer
	content.WriteString("BT /F1 14 Tf 72 760 Td 18 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escape(line))
	}
	content.WriteString("ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return out.Bytes()
}

// escape keeps printable ASCII and escapes PDF string delimiters.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
