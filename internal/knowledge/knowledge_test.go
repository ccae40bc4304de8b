package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidTicker(t *testing.T) {
	t.Parallel()

	cases := []struct {
		symbol string
		want   bool
	}{
		{"AAPL", true},
		{"aapl", true},
		{"  msft ", true},
		{"BRK.B", true},
		{"brk.b", true},
		{"F", true},
		{"TOOLONG", false},
		{"BRK.BB", false},
		{"123", false},
		{"AAPL1", false},
		{"", false},
		{".B", false},
	}

	for _, tc := range cases {
		if got := ValidTicker(tc.symbol); got != tc.want {
			t.Fatalf("ValidTicker(%q) = %v, want %v", tc.symbol, got, tc.want)
		}
	}
}

func TestLoadBuiltin(t *testing.T) {
	t.Parallel()

	base, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	profile, ok := base.Lookup("aapl")
	if !ok {
		t.Fatalf("expected AAPL profile via lowercase lookup")
	}
	for _, name := range profile.Names {
		if name != "apple inc" && name != "apple inc." {
			t.Fatalf("unexpected name %q", name)
		}
	}

	if _, ok := base.Lookup("ZZZZ"); ok {
		t.Fatalf("expected unknown ticker to miss")
	}
}

func TestLoadOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	data := `
ACME:
  names: [" Acme Corp "]
  keywords: ["Anvils"]
  competitors: ["wile"]
AAPL:
  names: ["apple inc"]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	base, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	acme, ok := base.Lookup("ACME")
	if !ok {
		t.Fatalf("expected override profile")
	}
	if len(acme.Names) != 1 || acme.Names[0] != "acme corp" {
		t.Fatalf("expected normalized name, got %v", acme.Names)
	}
	if len(acme.Keywords) != 1 || acme.Keywords[0] != "anvils" {
		t.Fatalf("expected lowercase keyword, got %v", acme.Keywords)
	}
	if len(acme.Competitors) != 1 || acme.Competitors[0] != "WILE" {
		t.Fatalf("expected uppercase competitor, got %v", acme.Competitors)
	}

	// Overrides replace builtin profiles wholesale.
	apple, _ := base.Lookup("AAPL")
	if len(apple.Products) != 0 {
		t.Fatalf("expected replaced AAPL profile, got products %v", apple.Products)
	}
}

func TestLoadOverrideRejectsInvalidTicker(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	if err := os.WriteFile(path, []byte("BAD1:\n  names: [\"bad\"]\n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid ticker")
	}
}

func TestTermUniverse(t *testing.T) {
	t.Parallel()

	base, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	terms := base.TermUniverse()
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if _, dup := seen[term]; dup {
			t.Fatalf("duplicate term %q", term)
		}
		seen[term] = struct{}{}
	}
	for _, want := range []string{"aapl", "microsoft", "iphone", "brk.b"} {
		if _, ok := seen[want]; !ok {
			t.Fatalf("expected term %q in universe", want)
		}
	}
}

func TestScoringTerms(t *testing.T) {
	t.Parallel()

	profile := CompanyProfile{
		Names:    []string{"acme corp"},
		Products: []string{"anvil"},
		Keywords: []string{"coyote"},
	}
	terms := ScoringTerms("ACME", profile)
	want := []string{"acme", "acme corp", "anvil", "coyote"}
	if len(terms) != len(want) {
		t.Fatalf("expected %d terms, got %d", len(want), len(terms))
	}
	for i, term := range want {
		if terms[i] != term {
			t.Fatalf("term %d: expected %q, got %q", i, term, terms[i])
		}
	}
}
