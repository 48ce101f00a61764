package recipe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/yocto-labs/recipegen/internal/output"
)

// dateLayout formats the "Generated on" header.
const dateLayout = "2006-01-02"

// Generator resolves requests against a registry and renders or writes recipes.
type Generator struct {
	registry *Registry
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry makes the generator resolve kinds against r.
func WithRegistry(r *Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// WithClock sets the clock used for the generation date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a generator over the built-in registry.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		registry: defaultRegistry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// resolve looks up the template and builds its data. forFile applies the
// filename rules used when the recipe is written or compared on disk.
func (g *Generator) resolve(req Request, forFile bool) (Template, Data, error) {
	tmpl, err := g.registry.Get(string(req.Kind))
	if err != nil {
		return nil, Data{}, err
	}
	validate := validateFields
	if forFile {
		validate = ValidateRequest
	}
	if err := validate(req); err != nil {
		return nil, Data{}, err
	}

	license := req.License
	if license == "" {
		license = DefaultLicense
	}

	return tmpl, Data{
		Name:     req.Name,
		Version:  req.Version,
		License:  license,
		Filename: tmpl.Filename(req.Name, req.Version),
		Date:     g.now().Format(dateLayout),
	}, nil
}

// Filename returns the recipe filename the request would be written to.
func (g *Generator) Filename(req Request) (string, error) {
	_, data, err := g.resolve(req, true)
	if err != nil {
		return "", err
	}
	return data.Filename, nil
}

// Render returns the recipe text for req. Name and version only need to be
// non-empty since no file is involved.
func (g *Generator) Render(req Request) (string, error) {
	tmpl, data, err := g.resolve(req, false)
	if err != nil {
		return "", err
	}

	output.Debug("rendering recipe",
		"type", req.Kind,
		"name", data.Name,
		"version", data.Version,
		"license", data.License,
	)

	return tmpl.Render(data)
}

// Write renders req into outputDir, creating the directory and its parents
// if needed. An existing recipe with the same filename is overwritten.
// Returns the path of the written file. An empty outputDir means the
// current working directory.
func (g *Generator) Write(req Request, outputDir string) (string, error) {
	tmpl, data, err := g.resolve(req, true)
	if err != nil {
		return "", err
	}

	dir, err := resolveOutputDir(outputDir)
	if err != nil {
		return "", err
	}

	content, err := tmpl.Render(data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, data.Filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing recipe %s: %w", path, err)
	}

	output.Debug("wrote recipe", "path", path, "bytes", len(content))
	return path, nil
}

// DiffResult compares a rendered recipe with the file at its target path.
type DiffResult struct {
	// Path is the recipe's target path.
	Path string

	// Exists is false when no file is present at Path.
	Exists bool

	// Lines is the line diff from the file on disk to the rendered recipe.
	Lines []output.DiffLine
}

// Changed reports whether writing the recipe would modify the file.
func (r *DiffResult) Changed() bool {
	return !r.Exists || output.HasChanges(r.Lines)
}

// Diff renders req and compares it with the recipe currently in outputDir.
// The generation date is taken from the existing file's header so that a
// recipe generated on an earlier day compares equal. Nothing is written.
func (g *Generator) Diff(req Request, outputDir string) (*DiffResult, error) {
	tmpl, data, err := g.resolve(req, true)
	if err != nil {
		return nil, err
	}

	dir, err := resolveOutputDir(outputDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, data.Filename)
	existing, err := os.ReadFile(path)
	exists := true
	if errors.Is(err, fs.ErrNotExist) {
		exists = false
		existing = nil
	} else if err != nil {
		return nil, fmt.Errorf("reading recipe %s: %w", path, err)
	}

	if date, ok := generatedDate(existing); ok {
		data.Date = date
	}

	content, err := tmpl.Render(data)
	if err != nil {
		return nil, err
	}

	output.Debug("diffing recipe", "path", path, "exists", exists, "date", data.Date)

	return &DiffResult{
		Path:   path,
		Exists: exists,
		Lines:  lineDiff(string(existing), content),
	}, nil
}

var generatedOnRe = regexp.MustCompile(`(?m)^# Generated on (\d{4}-\d{2}-\d{2})\r?$`)

// generatedDate returns the date from a recipe's "# Generated on" header.
func generatedDate(content []byte) (string, bool) {
	m := generatedOnRe.FindSubmatch(content)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

func resolveOutputDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// lineDiff computes a line-level diff from oldText to newText.
func lineDiff(oldText, newText string) []output.DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var result []output.DiffLine
	for _, d := range diffs {
		op := output.DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = output.DiffInsert
		case diffmatchpatch.DiffDelete:
			op = output.DiffDelete
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			result = append(result, output.DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return result
}
