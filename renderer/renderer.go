// Package renderer renders simulation reports as markdown.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/dcasim"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// Outcome is the result of one simulation: a report or the error that aborted it.
type Outcome struct {
	Label  string
	Report *dcasim.Report
	Err    error
}

// Markdown renders a successful report.
func Markdown(r *dcasim.Report) string {
	return renderTemplate("report", "report.md", newReportView(r))
}

// Failure renders the error that aborted the simulation of label.
func Failure(label string, err error) string {
	return renderTemplate("failure", "failure.md", struct {
		Label string
		Error error
	}{label, err})
}

// Outcomes renders every outcome in order, followed by a comparison table
// when more than one simulation succeeded.
func Outcomes(outcomes []Outcome) string {
	var b strings.Builder
	var views []reportView
	for i, o := range outcomes {
		if i > 0 {
			b.WriteString("\n")
		}
		if o.Err != nil || o.Report == nil {
			b.WriteString(Failure(o.Label, o.Err))
			continue
		}
		b.WriteString(Markdown(o.Report))
		views = append(views, newReportView(o.Report))
	}
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n", renderTemplate("comparison", "comparison.md", views))
		return len(views) > 1
	})
	return b.String()
}

// renderTemplate renders a template file.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
