package question

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog holds the ordered question list of every intake path.
type Catalog struct {
	paths map[Path][]Question
}

type catalogFile struct {
	Paths map[Path][]Question `yaml:"paths"`
}

// LoadCatalog parses the embedded catalog and validates it.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// MustLoadCatalog is LoadCatalog for process start-up.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog builds a Catalog from YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("question catalog: %w", err)
	}
	if len(f.Paths) == 0 {
		return nil, fmt.Errorf("question catalog: no paths defined")
	}

	for path, qs := range f.Paths {
		if err := validatePath(path, qs); err != nil {
			return nil, err
		}
	}
	return &Catalog{paths: f.Paths}, nil
}

func validatePath(path Path, qs []Question) error {
	seen := make(map[string]Question, len(qs))
	for i, q := range qs {
		if q.ID == "" {
			return fmt.Errorf("question catalog %s[%d]: id is required", path, i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("question catalog %s: duplicate id %q", path, q.ID)
		}
		if !q.Type.valid() {
			return fmt.Errorf("question catalog %s.%s: unknown type %q", path, q.ID, q.Type)
		}
		needsOptions := q.Type == TypeSingleSelect || q.Type == TypeMultiSelect
		if needsOptions != (len(q.Options) > 0) {
			return fmt.Errorf("question catalog %s.%s: options only apply to select questions", path, q.ID)
		}
		// show_if may only look back at questions already asked.
		if q.ShowIf != nil {
			target, ok := seen[q.ShowIf.Question]
			if !ok {
				return fmt.Errorf("question catalog %s.%s: show_if references %q which is not asked earlier", path, q.ID, q.ShowIf.Question)
			}
			if err := q.ShowIf.Validate(target); err != nil {
				return fmt.Errorf("question catalog %s.%s: %w", path, q.ID, err)
			}
		}
		seen[q.ID] = q
	}
	return nil
}

// ByPath returns the ordered questions of path. The result shares no memory
// with the catalog.
func (c *Catalog) ByPath(path Path) ([]Question, error) {
	qs, ok := c.paths[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out, nil
}

// Paths lists the known intake paths in a stable order.
func (c *Catalog) Paths() []Path {
	out := make([]Path, 0, len(c.paths))
	for _, p := range []Path{PathRecentLoss, PathPlanningAhead} {
		if _, ok := c.paths[p]; ok {
			out = append(out, p)
		}
	}
	var extra []Path
	for p := range c.paths {
		if p != PathRecentLoss && p != PathPlanningAhead {
			extra = append(extra, p)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Lookup finds a question by id across every path. Paths that share an id
// must agree on its type.
func (c *Catalog) Lookup(id string) (Question, bool) {
	for _, p := range c.Paths() {
		for _, q := range c.paths[p] {
			if q.ID == id {
				return q.clone(), true
			}
		}
	}
	return Question{}, false
}

// ValidPath reports whether path has a catalog.
func (c *Catalog) ValidPath(path Path) bool {
	_, ok := c.paths[path]
	return ok
}
