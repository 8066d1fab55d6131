package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/numbermatch/internal/domain"
)

func mustParse(t *testing.T, text string) domain.Board {
	t.Helper()
	b, err := domain.Parse(text)
	require.NoError(t, err)
	return b
}

func TestBoardSVG(t *testing.T) {
	b := mustParse(t, "91.")
	svg := BoardSVG(b, []domain.Move{{I: 0, J: 1}}, 0)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, ">9</text>")
	assert.Contains(t, svg, ">1</text>")
	assert.Contains(t, svg, "<line")
	assert.Contains(t, svg, `stroke-width="5"`, "highlighted move drawn thicker")
}

func TestBoardSVGEmptyBoard(t *testing.T) {
	svg := BoardSVG(domain.Board{}, nil, -1)
	assert.Contains(t, svg, "Board cleared!")
}

func TestSolutionPage(t *testing.T) {
	b := mustParse(t, "5555")
	phases := []Phase{{
		Label: "Phase 1",
		Board: b,
		Steps: []domain.Step{{
			Board:      b,
			Moves:      []domain.Move{{I: 0, J: 1}, {I: 2, J: 3}},
			RowRemoval: 1,
		}},
	}}
	html, err := Solution(phases)
	require.NoError(t, err)
	assert.Contains(t, html, "Phase 1")
	assert.Contains(t, html, "removes row")
	assert.Contains(t, html, "1 empty row removed")
	assert.Contains(t, html, "0 cells remaining")
	assert.Contains(t, html, "Board cleared!")
}

func TestSolutionExtendBanner(t *testing.T) {
	b := mustParse(t, "12")
	html, err := Solution([]Phase{
		{Label: "Phase 1", Board: b},
		{Label: "Phase 2", Board: mustParse(t, "1212"), Extended: true},
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Board extended")
}

func TestSolutionRejectsBrokenReplay(t *testing.T) {
	b := mustParse(t, "5555")
	_, err := Solution([]Phase{{
		Label: "Phase 1",
		Board: b,
		Steps: []domain.Step{{Board: b, Moves: []domain.Move{{I: 0, J: 99}}, RowRemoval: -1}},
	}})
	require.Error(t, err)
}
