package reader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

func TestSupports(t *testing.T) {
	r := New()

	assert.True(t, r.Supports("claim.txt"))
	assert.True(t, r.Supports("claim.pdf"))
	assert.True(t, r.Supports("CLAIM.PDF"))
	assert.True(t, r.Supports(filepath.Join("some", "dir", "claim.txt")))
	assert.False(t, r.Supports("claim.docx"))
	assert.False(t, r.Supports("claim"))
}

func TestRead_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claim.txt")
	content := "Policy Number: HO-449021\nClaim Type: Fire\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := New().Read(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, content, doc.Text)
	assert.Equal(t, path, doc.Path)
	assert.NotEmpty(t, doc.ID)
}

func TestRead_DistinctDocumentIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claim.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := New()
	first, err := r.Read(context.Background(), path)
	require.NoError(t, err)
	second, err := r.Read(context.Background(), path)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRead_UnsupportedExtension(t *testing.T) {
	_, err := New().Read(context.Background(), "claim.docx")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "claim.docx")
}

func TestRead_MissingFile(t *testing.T) {
	_, err := New().Read(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))

	assert.Error(t, err)
}

func TestRead_MalformedPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claim.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := New().Read(context.Background(), path)

	assert.Error(t, err)
}

func TestContentStreamText(t *testing.T) {
	stream := "BT\n" +
		"/F1 12 Tf\n" +
		"72 720 Td\n" +
		"(Policy Number: HO-449021) Tj\n" +
		"T*\n" +
		"(Claim Type: Fire) Tj\n" +
		"ET\n"

	text := contentStreamText([]byte(stream))

	assert.Equal(t, "Policy Number: HO-449021\nClaim Type: Fire", text)
}

func TestContentStreamText_RunsOnOneLine(t *testing.T) {
	stream := "(Estimated Damage:) Tj\n" +
		"120 0 Td\n" +
		"($18,000) Tj\n"

	assert.Equal(t, "Estimated Damage: $18,000", contentStreamText([]byte(stream)))
}

func TestContentStreamText_NoText(t *testing.T) {
	assert.Empty(t, contentStreamText([]byte("q\n1 0 0 1 0 0 cm\nQ\n")))
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Jane Doe", want: "Jane Doe"},
		{name: "escaped parens", input: `\(note\)`, want: "(note)"},
		{name: "escaped backslash", input: `a\\b`, want: `a\b`},
		{name: "newline escape", input: `a\nb`, want: "a\nb"},
		{name: "octal escape", input: `\101\102`, want: "AB"},
		{name: "short octal", input: `\41`, want: "!"},
		{name: "unknown escape passes through", input: `a\qb`, want: "aqb"},
		{name: "trailing backslash", input: `a\`, want: `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodePDFString([]byte(tt.input)))
		})
	}
}
