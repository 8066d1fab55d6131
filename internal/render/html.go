package render

import (
	"fmt"
	"html/template"
	"strings"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/rules"
)

// Phase is one solver phase prepared for display.
type Phase struct {
	Label    string
	Extended bool // board was extended before this phase
	Board    domain.Board
	Steps    []domain.Step
}

type stepView struct {
	Number      int
	MoveCount   int
	Descs       []string
	RemovesRow  bool
	RowsRemoved int
	SVG         template.HTML
}

type phaseView struct {
	Label     string
	Extended  bool
	BoardSVG  template.HTML
	Steps     []stepView
	FinalSVG  template.HTML
	Remaining int
}

var page = template.Must(template.New("solution").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8">
<title>Number Match Solution</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
       max-width: 520px; margin: 0 auto; padding: 20px; background: #FAFAFA; }
h1 { color: #333; border-bottom: 2px solid #4CAF50; padding-bottom: 8px; }
h2 { color: #555; margin-top: 36px; }
.step { background: white; border-radius: 8px; padding: 16px; margin: 16px 0;
        box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
.step-title { font-weight: bold; margin-bottom: 4px; color: #444; }
.move-list { font-size: 13px; color: #666; margin: 4px 0 12px 0; line-height: 1.7; }
.move-item { display: inline-block; background: #F5F5F5; border-radius: 4px;
             padding: 1px 6px; margin: 2px; white-space: nowrap; }
.extend-banner { background: #FFF3E0; border-left: 4px solid #FF9800;
                 padding: 12px 16px; margin: 24px 0; border-radius: 4px;
                 font-weight: bold; color: #E65100; }
.final { background: #E8F5E9; }
.cleared { color: #4CAF50; font-weight: bold; padding: 8px; }
.row-removed { font-size: 12px; color: #E65100; font-style: italic; margin-top: 4px; }
</style></head><body>
<h1>Number Match Solution</h1>
{{range .Phases}}<h2>{{.Label}}</h2>
{{if .Extended}}<div class="extend-banner">&#10227; Board extended &mdash; remaining numbers dealt again</div>
<div class="step"><div class="step-title">Extended board</div>{{.BoardSVG}}</div>
{{end}}{{range .Steps}}<div class="step">
<div class="step-title">Step {{.Number}}: {{.MoveCount}} move{{if ne .MoveCount 1}}s{{end}}{{if .RemovesRow}} (removes row){{end}}</div>
<div class="move-list">{{range .Descs}}<span class="move-item">{{.}}</span> {{end}}</div>
{{.SVG}}
{{if .RemovesRow}}<div class="row-removed">&#8593; {{.RowsRemoved}} empty row{{if ne .RowsRemoved 1}}s{{end}} removed after this step</div>{{end}}
</div>
{{end}}<div class="step final">
<div class="step-title">After {{.Label}}: {{.Remaining}} cell{{if ne .Remaining 1}}s{{end}} remaining</div>
{{.FinalSVG}}
</div>
{{end}}</body></html>
`))

// Solution renders the full multi-phase report as a standalone HTML page.
func Solution(phases []Phase) (string, error) {
	views := make([]phaseView, 0, len(phases))
	stepNo := 0
	for _, p := range phases {
		pv := phaseView{
			Label:    p.Label,
			Extended: p.Extended,
			BoardSVG: template.HTML(BoardSVG(p.Board, nil, -1)),
		}
		final := p.Board
		for _, st := range p.Steps {
			stepNo++
			sv := stepView{
				Number:     stepNo,
				MoveCount:  len(st.Moves),
				RemovesRow: st.RowRemoval >= 0,
				SVG:        template.HTML(BoardSVG(st.Board, st.Moves, st.RowRemoval)),
			}
			for _, m := range st.Moves {
				sv.Descs = append(sv.Descs, fmt.Sprintf("%d ↔ %d", st.Board[m.I], st.Board[m.J]))
			}
			after := st.Board
			for _, m := range st.Moves {
				next, err := rules.Apply(after, m)
				if err != nil {
					return "", fmt.Errorf("render replay: %w", err)
				}
				after = next
			}
			if sv.RemovesRow {
				sv.RowsRemoved = (len(st.Board) - len(after)) / domain.RowSize
			}
			final = after
			pv.Steps = append(pv.Steps, sv)
		}
		pv.FinalSVG = template.HTML(BoardSVG(final, nil, -1))
		pv.Remaining = final.RemainingCount()
		views = append(views, pv)
	}

	var sb strings.Builder
	if err := page.Execute(&sb, struct{ Phases []phaseView }{views}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
