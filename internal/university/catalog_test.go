package university

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcampus/internal/random"
)

const jsonCatalog = `[
  {"name": "Harvard University", "country": "United States", "alpha_two_code": "US", "domains": ["harvard.edu"], "web_pages": ["https://www.harvard.edu/"]},
  {"name": "Boston College", "state-province": "Massachusetts"},
  {"name": "   "}
]`

const yamlCatalog = `
- name: Stanford University
  country: United States
  domains:
    - stanford.edu
- name: Rice University
`

func writeFile(t *testing.T, fs *zfilesystem.MemFS, name, data string) {
	t.Helper()
	if dir := filepath.Dir(name); dir != "." {
		if err := fs.MkdirAll(dir, 0o700); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := fs.WriteFile(name, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadJSON(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	writeFile(t, fs, "verified_universities.json", jsonCatalog)

	c, ok, err := Load(fs, "verified_universities.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("catalog should be present")
	}

	// blank-name record is dropped
	if c.Len() != 2 {
		t.Fatalf("len: got %d, want 2", c.Len())
	}

	h := c.Universities[0]
	if h.Name != "Harvard University" || h.AlphaTwoCode != "US" {
		t.Errorf("unexpected first record: %+v", h)
	}
	if len(h.Domains) != 1 || h.Domains[0] != "harvard.edu" {
		t.Errorf("domains: got %v", h.Domains)
	}
	if c.Universities[1].StateProvince != "Massachusetts" {
		t.Errorf("state-province not decoded: %+v", c.Universities[1])
	}
	if len(c.Sources) != 1 || c.Sources[0] != "verified_universities.json" {
		t.Errorf("sources: got %v", c.Sources)
	}
}

func TestLoadYAML(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	writeFile(t, fs, "catalog.yaml", yamlCatalog)

	c, ok, err := Load(fs, "catalog.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("catalog should be present")
	}
	if c.Len() != 2 {
		t.Fatalf("len: got %d, want 2", c.Len())
	}
	if c.Universities[0].Name != "Stanford University" {
		t.Errorf("name: got %q", c.Universities[0].Name)
	}
}

func TestLoadGlob(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	writeFile(t, fs, "catalogs/b.yaml", yamlCatalog)
	writeFile(t, fs, "catalogs/a.json", jsonCatalog)
	writeFile(t, fs, "catalogs/notes.txt", "not a catalog")

	c, ok, err := Load(fs, "catalogs/*.{json,yaml}")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("catalog should be present")
	}
	if c.Len() != 4 {
		t.Fatalf("len: got %d, want 4", c.Len())
	}

	// files are read in lexical order
	if c.Universities[0].Name != "Harvard University" {
		t.Errorf("first: got %q, want Harvard University", c.Universities[0].Name)
	}
	if len(c.Sources) != 2 {
		t.Errorf("sources: got %v", c.Sources)
	}
}

func TestLoadAbsent(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"missing file", "verified_universities.json"},
		{"glob without matches", "catalogs/*.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := zfilesystem.NewMemFS()
			if tt.name == "glob without matches" {
				writeFile(t, fs, "catalogs/readme.txt", "nothing here")
			}

			c, ok, err := Load(fs, tt.pattern)
			if err != nil {
				t.Fatalf("absent catalog should not error: %v", err)
			}
			if ok {
				t.Error("ok should be false for absent catalog")
			}
			if c.Len() != 0 {
				t.Errorf("absent catalog should be empty, got %d", c.Len())
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"bad json", "bad.json", `[{"name": "Harvard"`},
		{"json object", "obj.json", `{"name": "Harvard"}`},
		{"bad yaml", "bad.yaml", "- name: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := zfilesystem.NewMemFS()
			writeFile(t, fs, tt.file, tt.data)

			_, ok, err := Load(fs, tt.file)
			if err == nil {
				t.Fatal("malformed catalog should error")
			}
			if ok {
				t.Error("ok should be false on error")
			}
			if !strings.Contains(err.Error(), tt.file) {
				t.Errorf("error should name the file: %v", err)
			}
		})
	}
}

func TestLoadPathMissing(t *testing.T) {
	dir := t.TempDir()
	c, ok, err := LoadPath(filepath.Join(dir, "nope.json"))
	if err != nil {
		t.Fatalf("missing path should not error: %v", err)
	}
	if ok || c != nil {
		t.Errorf("missing path should be absent, got ok=%v c=%v", ok, c)
	}
}

func TestCatalogPick(t *testing.T) {
	var empty *Catalog
	if _, ok := empty.Pick(random.New(1)); ok {
		t.Error("nil catalog should not pick")
	}

	c := &Catalog{Universities: []University{{Name: "A"}, {Name: "B"}}}
	src := random.New(2)
	seen := make(map[string]bool)
	for range 50 {
		u, ok := c.Pick(src)
		if !ok {
			t.Fatal("non-empty catalog should pick")
		}
		seen[u.Name] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both universities picked, saw %v", seen)
	}
}

func TestCatalogSearch(t *testing.T) {
	c := &Catalog{Universities: []University{
		{Name: "Harvard University"},
		{Name: "Université de Montréal"},
		{Name: "Boston College"},
	}}

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"harv", 1},
		{"MONTREAL", 1},
		{"univ", 2},
		{"oxford", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := len(c.Search(tt.query)); got != tt.want {
				t.Errorf("Search(%q) returned %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}
