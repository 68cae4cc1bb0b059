package classifier

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfileDefaults(t *testing.T) {
	p, err := LoadProfile("")
	if err != nil {
		t.Fatalf("LoadProfile(\"\") error: %v", err)
	}
	if len(p.Areas) != 5 {
		t.Fatalf("default profile has %d areas, want 5", len(p.Areas))
	}
	if p.Areas[0].Key != "corporate" {
		t.Errorf("first area = %q, want corporate", p.Areas[0].Key)
	}
	if p.Contact.Email != "hello@lexora.law" {
		t.Errorf("default email = %q", p.Contact.Email)
	}
}

func TestLoadProfileFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firm.yaml")
	content := `
contact:
  phone: "(555) 000-1111"
practice_areas:
  - key: tax
    description: "Tax Law — planning and disputes."
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}
	if len(p.Areas) != 1 || p.Areas[0].Key != "tax" {
		t.Errorf("areas = %v, want single tax area", p.Areas)
	}
	if p.Contact.Phone != "(555) 000-1111" {
		t.Errorf("phone not overridden: %q", p.Contact.Phone)
	}
	// Fields absent from the file keep their defaults.
	if p.Contact.Email != "hello@lexora.law" {
		t.Errorf("email should fall back to default, got %q", p.Contact.Email)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing profile file")
	}
}
