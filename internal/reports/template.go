package reports

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
)

const (
	PlaceholderTableJSON     = "table_json"
	PlaceholderClientsJSON   = "clients_json"
	PlaceholderReportDate    = "report_date"
	PlaceholderTotalRequests = "total_requests"
)

//go:embed templates/report.html
var defaultTemplate string

// $$, $name or ${name}
var placeholderRegexp = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\})`)

// Template is a report document with $name placeholders.
type Template struct {
	text string
}

func NewTemplate(text string) *Template {
	return &Template{text: text}
}

// DefaultTemplate returns the embedded HTML report template.
func DefaultTemplate() *Template {
	return NewTemplate(defaultTemplate)
}

// LoadTemplate reads a template from path, or returns the default one when path is empty.
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return DefaultTemplate(), nil
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report template %q: %w", path, err)
	}
	return NewTemplate(string(text)), nil
}

// SafeSubstitute replaces $name and ${name} with values[name] and $$ with $.
// Placeholders without a value and every other character are left as they are.
func (t *Template) SafeSubstitute(values map[string]string) string {
	return placeholderRegexp.ReplaceAllStringFunc(t.text, func(match string) string {
		groups := placeholderRegexp.FindStringSubmatch(match)
		if groups[1] != "" {
			return "$"
		}
		name := groups[2]
		if name == "" {
			name = groups[3]
		}
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}
