package textsource

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFromStream(t *testing.T) {
	stream := []byte("BT\n" +
		"(Fecha: 18-02-2026) Tj\n" +
		"0 -14 Td\n" +
		"[(Concesi) -20 (on: El Sosneado)] TJ\n" +
		"T*\n" +
		"(Hora Estimada: 8:00hs) '\n" +
		"ET\n")

	got := textFromStream(stream)

	assert.Contains(t, got, "Fecha: 18-02-2026")
	assert.Contains(t, got, "Concesion: El Sosneado")
	assert.Contains(t, got, "Hora Estimada: 8:00hs")
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Batería 216", "Batería 216"},
		{"escaped parens", `\(PCR\)`, "(PCR)"},
		{"octal escape", `a\040b`, "a b"},
		{"newline escape", `a\nb`, "a\nb"},
		{"backslash", `a\\b`, `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodePDFString([]byte(tt.raw)))
		})
	}
}

func TestCleanText(t *testing.T) {
	got := cleanText("  Fecha:   10/10/2025  \n\n\nHora:\t10:00\n")
	assert.Equal(t, "Fecha: 10/10/2025\nHora: 10:00", got)
}

func TestTextOfMissingFile(t *testing.T) {
	p := NewPDF(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	_, err := p.TextOf(t.TempDir() + "/nope.pdf")
	require.Error(t, err)
}
