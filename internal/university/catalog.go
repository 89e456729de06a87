// Package university resolves university names to email domains and loads
// the optional university catalog.
package university

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcampus/internal/fold"
	"github.com/zarlcorp/zcampus/internal/random"
	"gopkg.in/yaml.v3"
)

// University is one catalog record. Only Name is required.
type University struct {
	Name          string   `json:"name" yaml:"name"`
	Country       string   `json:"country,omitempty" yaml:"country,omitempty"`
	AlphaTwoCode  string   `json:"alpha_two_code,omitempty" yaml:"alpha_two_code,omitempty"`
	StateProvince string   `json:"state-province,omitempty" yaml:"state-province,omitempty"`
	Domains       []string `json:"domains,omitempty" yaml:"domains,omitempty"`
	WebPages      []string `json:"web_pages,omitempty" yaml:"web_pages,omitempty"`
}

// Catalog is a read-only list of universities.
type Catalog struct {
	Universities []University
	// Sources lists the files the catalog was read from.
	Sources []string
}

// Len returns the number of universities. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Universities)
}

// Pick returns a uniformly chosen university, or false if the catalog is
// empty.
func (c *Catalog) Pick(rng random.Source) (University, bool) {
	if c.Len() == 0 {
		return University{}, false
	}
	return random.Pick(rng, c.Universities), true
}

// Search returns universities whose folded name contains the folded query.
// An empty query returns everything.
func (c *Catalog) Search(query string) []University {
	if c.Len() == 0 {
		return nil
	}
	q := strings.TrimSpace(fold.Lower(query))
	if q == "" {
		return slices.Clone(c.Universities)
	}

	var out []University
	for _, u := range c.Universities {
		if strings.Contains(fold.Lower(u.Name), q) {
			out = append(out, u)
		}
	}
	return out
}

// LoadPath loads a catalog from an OS path or glob such as
// "catalogs/**/*.yaml".
func LoadPath(p string) (*Catalog, bool, error) {
	base, pattern := doublestar.SplitPattern(filepath.ToSlash(p))
	return Load(zfilesystem.NewOSFileSystem(base), pattern)
}

// Load reads the catalog named by pattern from fsys. A missing catalog is
// not an error: Load returns (nil, false, nil). Files that exist but do not
// parse are reported as errors.
func Load(fsys zfilesystem.ReadWriteFileFS, pattern string) (*Catalog, bool, error) {
	files, err := catalogFiles(fsys, pattern)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load catalog: %w", err)
	}
	if len(files) == 0 {
		return nil, false, nil
	}

	c := &Catalog{}
	for _, name := range files {
		data, err := fsys.ReadFile(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, false, fmt.Errorf("load catalog: read %s: %w", name, err)
		}

		unis, err := Parse(name, data)
		if err != nil {
			return nil, false, fmt.Errorf("load catalog: %w", err)
		}

		c.Universities = append(c.Universities, unis...)
		c.Sources = append(c.Sources, name)
	}

	if len(c.Sources) == 0 {
		return nil, false, nil
	}

	return c, true, nil
}

// Parse decodes a catalog file. YAML is chosen by extension, anything
// else is read as a JSON array. Records with a blank name are dropped.
func Parse(name string, data []byte) ([]University, error) {
	var unis []University

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &unis); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &unis); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return slices.DeleteFunc(unis, func(u University) bool {
		return strings.TrimSpace(u.Name) == ""
	}), nil
}

func catalogFiles(fsys zfilesystem.ReadWriteFileFS, pattern string) ([]string, error) {
	if !isGlob(pattern) {
		return []string{pattern}, nil
	}

	root, _ := doublestar.SplitPattern(pattern)

	var files []string
	err := fsys.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ok, err := doublestar.Match(pattern, p)
		if err != nil {
			return fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
