package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func TestFitColumn(t *testing.T) {
	tests := []struct {
		name  string
		col   string
		width int
		want  string
	}{
		{"pads ascii", "abc", 6, "abc   "},
		{"exact", "abcdef", 6, "abcdef"},
		{"truncates ascii", "abcdefghij", 6, "abc..."},
		{"pads by cells not bytes", "90.00°", 8, "90.00°  "},
		{"keeps multibyte runes whole", "ürünürün", 6, "ürü..."},
		{"wide runes", "燃料燃料", 6, "燃... "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitColumn(tt.col, tt.width)
			if got != tt.want {
				t.Errorf("fitColumn(%q, %d) = %q, want %q", tt.col, tt.width, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("fitColumn(%q, %d) produced invalid UTF-8", tt.col, tt.width)
			}
			if w := lipgloss.Width(got); w != tt.width {
				t.Errorf("fitColumn(%q, %d) is %d cells wide", tt.col, tt.width, w)
			}
		})
	}
}

func TestPrintTitleAndSeparator(t *testing.T) {
	var buf bytes.Buffer
	Output = &buf
	defer func() { Output = os.Stdout }()

	PrintTitle("mcnpgeom")
	PrintSeparator()

	out := buf.String()
	if !strings.Contains(out, "mcnpgeom") {
		t.Errorf("title missing from output:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("─", 45)) {
		t.Errorf("separator missing from output:\n%s", out)
	}
}
