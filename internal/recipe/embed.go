package recipe

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.bb.tmpl
var templateFS embed.FS

// parseTemplate loads templates/<kind>.bb.tmpl from the embedded filesystem.
// The returned template is named after the file so Execute runs its body.
func parseTemplate(kind Kind) (*template.Template, error) {
	file := string(kind) + ".bb.tmpl"
	tmpl, err := template.New(file).ParseFS(templateFS, "templates/"+file)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", file, err)
	}
	return tmpl, nil
}
