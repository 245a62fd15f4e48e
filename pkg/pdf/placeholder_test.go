package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go-interview-backend/internal/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	r := NewPlaceholderRenderer()

	t.Run("Without report", func(t *testing.T) {
		doc, err := r.RenderPDF(context.Background(), "42", nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-1.4")))
		assert.True(t, mimetype.Detect(doc).Is("application/pdf"))
		assert.Contains(t, string(doc), "(Candidate: 42) Tj")
		assert.Contains(t, string(doc), "No report has been generated yet.")
		assert.True(t, bytes.HasSuffix(doc, []byte("%%EOF\n")))
	})

	t.Run("With report", func(t *testing.T) {
		report := &domain.Report{
			CandidateID: "1",
			FinalScore:  85,
			Decision:    domain.DecisionHire,
			GeneratedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
		}
		doc, err := r.RenderPDF(context.Background(), "1", report)
		require.NoError(t, err)
		assert.Contains(t, string(doc), "(Final score: 85) Tj")
		assert.Contains(t, string(doc), "(Decision: hire) Tj")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.RenderPDF(ctx, "1", nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\(b\)c\\`, escape(`a(b)c\`))
	assert.Equal(t, "??", escape("Жж"))
}
