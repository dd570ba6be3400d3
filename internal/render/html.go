package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/abhisek/repograde/internal/report"
)

const reportTemplate = `<div class="report">
  <div class="overall"><h3>Overall Score: {{.TotalText}}</h3></div>
{{- if .CriticalFailures}}
  <div class="critical-failure">Critical requirement failed: {{join .CriticalFailures ", "}}</div>
{{- end}}
{{- range .Sections}}
  <section class="category category-{{.Category}}">
    <h3>{{.Title}} <span class="subtotal">{{.SubtotalText}}</span></h3>
{{- range .Lines}}
{{template "line" .}}
{{- end}}
  </section>
{{- end}}
{{- if .Unrecognized}}
  <section class="category category-unrecognized">
    <h3>Unrecognized Items</h3>
{{- range .Unrecognized}}
{{template "line" .}}
{{- end}}
  </section>
{{- end}}
{{- if .HasTimings}}
  <section class="timings">
    <h3>Timings</h3>
    <dl>
{{- range .Timings}}
      <dt>{{.Label}}</dt><dd>{{.ValueText}}</dd>
{{- end}}
    </dl>
  </section>
{{- end}}
</div>
{{define "line"}}    <div class="score score-{{.Class}}{{if .OutOfRange}} out-of-range{{end}}">
      <h4>{{.Name}}</h4>
      <p class="points">{{.ScoreText}} {{.PercentText}}</p>
      <div class="explanation">{{markdown .Explanation}}</div>
    </div>{{end}}`

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"markdown": MarkdownToHTML,
	"join":     strings.Join,
}).Parse(reportTemplate))

// HTML renders the document as an HTML fragment. Each call produces the
// complete fragment; callers replace their output region with it.
func HTML(doc report.Document) (template.HTML, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return template.HTML(buf.String()), nil
}
