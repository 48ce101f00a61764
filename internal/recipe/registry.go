package recipe

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template renders one kind of recipe.
type Template interface {
	// Kind returns the tag the template is registered under.
	Kind() Kind

	// Description is a one-line summary shown by `recipegen list`.
	Description() string

	// Filename returns the recipe filename for a package.
	Filename(name, version string) string

	// Render executes the template with data.
	Render(data Data) (string, error)
}

// bbTemplate is a Template backed by an embedded text/template file.
type bbTemplate struct {
	kind        Kind
	description string
	// prefix is prepended to the recipe filename ("python3-" for Python).
	prefix string
	tmpl   *template.Template
}

func (t *bbTemplate) Kind() Kind { return t.kind }

func (t *bbTemplate) Description() string { return t.description }

func (t *bbTemplate) Filename(name, version string) string {
	return fmt.Sprintf("%s%s_%s.bb", t.prefix, name, version)
}

func (t *bbTemplate) Render(data Data) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", t.kind, err)
	}
	return buf.String(), nil
}

// builtin describes the templates shipped with the binary, in listing order.
var builtin = []struct {
	kind        Kind
	description string
	prefix      string
}{
	{Autotools, "Autotools package (configure, make, make install)", ""},
	{CMake, "CMake package with an out-of-tree Release build", ""},
	{Python, "Python package built with setuptools", "python3-"},
	{KernelModule, "Out-of-tree Linux kernel module", ""},
	{Systemd, "Daemon installed with a systemd service unit", ""},
}

// Registry maps kinds to templates.
type Registry struct {
	templates map[Kind]Template
	order     []Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[Kind]Template)}
}

// BuiltinRegistry returns a registry holding the five built-in templates.
func BuiltinRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, b := range builtin {
		tmpl, err := parseTemplate(b.kind)
		if err != nil {
			return nil, err
		}
		if err := r.Register(&bbTemplate{
			kind:        b.kind,
			description: b.description,
			prefix:      b.prefix,
			tmpl:        tmpl,
		}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a template. Registering the same kind twice is an error.
func (r *Registry) Register(t Template) error {
	if _, ok := r.templates[t.Kind()]; ok {
		return fmt.Errorf("template %q already registered", t.Kind())
	}
	r.templates[t.Kind()] = t
	r.order = append(r.order, t.Kind())
	return nil
}

// Get returns the template registered for kind.
// Returns an *UnknownKindError if there is none.
func (r *Registry) Get(kind string) (Template, error) {
	t, ok := r.templates[Kind(kind)]
	if !ok {
		return nil, &UnknownKindError{Kind: kind, Valid: r.Names()}
	}
	return t, nil
}

// Kinds returns registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	return append([]Kind(nil), r.order...)
}

// Names returns registered kinds as strings, in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, k := range r.order {
		names[i] = string(k)
	}
	return names
}

// List returns registered templates in registration order.
func (r *Registry) List() []Template {
	list := make([]Template, len(r.order))
	for i, k := range r.order {
		list[i] = r.templates[k]
	}
	return list
}

var defaultRegistry = mustBuiltinRegistry()

func mustBuiltinRegistry() *Registry {
	r, err := BuiltinRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the shared built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// Names returns the built-in kinds.
func Names() []string {
	return defaultRegistry.Names()
}

// IsValidKind reports whether kind names a built-in template.
func IsValidKind(kind string) bool {
	_, err := defaultRegistry.Get(kind)
	return err == nil
}
