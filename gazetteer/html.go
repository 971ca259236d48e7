package gazetteer

import (
	"fmt"
	"html/template"
	"io"
)

// stylesheet is embedded in the document head. The page class drives
// print pagination via page-break-before.
const stylesheet = `  div { font-family: helvetica neue, helvetica; font-size: 18pt; }
  th, td, th div, td div { font-size: 12pt; }
  .cover .title { font-weight: bold; }
  .page { margin: 1em; page-break-before: always; }
  .number { font-size: 60pt; float: right; }
  .ancestors { margin-bottom: 12pt; }
  .ancestor { font-size: 18pt; }
  .title { font-size: 24pt; margin: 0 0 1em; }
  .title .name { font-weight: bold; }
  .contents, .listing {
      clear: both;
      margin: 1em 0 0 0;
      padding: 1em;
      border: 0.25pt solid black;
  }
  .listing tr { vertical-align: baseline; }
  .listing th, .listing td {
      text-align: left;
      font-weight: normal;
      white-space: nowrap;
      page-break-inside: avoid;
  }
  .listing div.item { padding: 6pt 0; }
  .listing th { padding: 0 12pt 12pt 0; border-bottom: 0.25pt solid black; }
  .listing td { padding: 12pt 18pt 0 0; }
  .listing td:last-child { padding: 12pt 0 0 0; }
  .listing td.wrap { white-space: normal; }
  .listing th.name, .listing td.name { font-weight: bold; }
`

const documentText = `<style>
` + stylesheet + `</style>
<div class="page">
  <div class="cover">
    <div class="title">{{.Title}}</div>
    <div>Source: {{.SourceName}}</div>
    <div>Version: {{.Version}}</div>
    <div class="contents">
{{- range .Contents}}
      <div>{{.LevelName}} pages: {{.Abbr}}1 &ndash; {{.Abbr}}{{.Count}}</div>
{{- end}}
    </div>
  </div>
</div>
{{- range .Pages}}
<div class="page">
  <div class="number">
    {{.Code}}
  </div>
  <div class="ancestors">
{{- range .Ancestors}}
    <div class="ancestor">
      {{.LevelName}}: <span class="name">{{.Name}}</span>
    </div>
{{- end}}
  </div>
  <div class="title">
    {{.LevelName}}: <span class="name">{{.DivisionName}}</span>
  </div>
{{- if .Listing.Rich}}
  <table cellpadding="0" cellspacing="0" class="listing">
    <tr class="headings">
{{- range $i, $heading := $.LeafHeadings}}
      <th{{if not $i}} class="name"{{end}}>{{$heading}}</th>
{{- end}}
    </tr>
{{- range .Listing.Rows}}
    <tr class="item">
      <td class="name">{{.Name}}</td>
      <td>{{range $i, $other := .OtherNames}}{{if $i}}<br>{{end}}{{$other}}{{end}}</td>
      <td>{{range $i, $line := .ChiefLines}}{{if $i}}<br>&nbsp;&nbsp;&nbsp;&nbsp;{{end}}{{$line}}{{end}}</td>
      <td class="wrap">{{.Meaning}}</td>
    </tr>
{{- end}}
  </table>
{{- else}}
  <div class="listing">
{{- range .Listing.Items}}
    <div class="item">
      {{.Name}} &mdash; {{.Code}}
    </div>
{{- end}}
  </div>
{{- end}}
</div>
{{- end}}
`

var documentTemplate = template.Must(template.New("gazetteer").Parse(documentText))

// WriteHTML serializes the document. Interpolated values are escaped by
// the template engine; the stylesheet and the dash and indent entities
// are template text and pass through verbatim.
func WriteHTML(w io.Writer, doc *Document) error {
	if err := documentTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("failed to render gazetteer: %w", err)
	}
	return nil
}
