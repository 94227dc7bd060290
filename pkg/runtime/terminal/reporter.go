package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
)

// Reporter outputs reports to the console as plain bullet lists
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const listTemplate = `
{{.Title}}{{if .Period.Duration}} ({{.Period.Duration}} days)
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}{{end}}
{{if .Currency}}Total Amount: {{.Currency}} {{printf "%.2f" .TotalAmount}}
{{end}}{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{range .Details}}- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}{{if .Description}} ({{.Description}}){{end}}
{{end}}{{end}}`

func (c *Reporter) Handle(report *domain.Report) error {
	t, err := template.New("report").Parse(listTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
