package preconditions

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDeckPath(t *testing.T) {
	dir := t.TempDir()

	deck := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(deck, []byte("lattices: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write deck: %v", err)
	}
	text := filepath.Join(dir, "deck.txt")
	if err := os.WriteFile(text, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.yml"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"yaml deck", deck, false},
		{"missing", filepath.Join(dir, "missing.yaml"), true},
		{"wrong extension", text, true},
		{"directory", filepath.Join(dir, "sub.yml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeckPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDeckPath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()

	if err := ValidateOutputPath(filepath.Join(dir, "out.yaml")); err != nil {
		t.Errorf("ValidateOutputPath() error = %v", err)
	}
	if err := ValidateOutputPath(filepath.Join(dir, "missing", "out.yaml")); err == nil {
		t.Errorf("ValidateOutputPath() with missing directory should fail")
	}
}
