package modelica

import (
	"embed"
	"fmt"
	"path"
	"strconv"
	"text/template"
)

//go:embed templates/*.mo.tmpl
var templatesFS embed.FS

// zoneTemplates maps the envelope granularity to its wired template
// file. Granularities without an entry are unsupported.
var zoneTemplates = map[int]string{
	2: "templates/two_elements.mo.tmpl",
}

// templateFuncs are helpers available inside the model templates.
var templateFuncs = template.FuncMap{
	// f renders a float with the shortest exact decimal representation.
	"f": func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	},
}

// loadZoneTemplate parses the template for the given granularity.
// Callers have already validated the granularity via checkElements.
func loadZoneTemplate(elements int) (*template.Template, error) {
	name := zoneTemplates[elements]
	data, err := templatesFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tmpl, err := template.New(path.Base(name)).Funcs(templateFuncs).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}
