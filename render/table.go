package render

import (
	"github.com/dekarrin/rosed"
	"github.com/geange/fa"
)

// Table renders the transition function of g as a text table with one row
// per state and one column per symbol. The first column marks the initial
// state with -> and final states with *. Cells with several targets list
// them as a set; undefined cells are left empty. An epsilon column is added
// only when g has epsilon transitions.
func Table(g Graph, width int) string {
	symbols := g.Alphabet().Elements()
	cells := make(map[string]map[string][]string)
	hasEpsilon := false
	for _, t := range g.Transitions() {
		if t.Symbol == fa.Epsilon {
			hasEpsilon = true
		}
		row, ok := cells[t.From]
		if !ok {
			row = make(map[string][]string)
			cells[t.From] = row
		}
		row[t.Symbol] = append(row[t.Symbol], t.To)
	}
	if hasEpsilon {
		symbols = append(symbols, fa.Epsilon)
	}

	header := []string{"", "state"}
	for _, sym := range symbols {
		header = append(header, symbolLabel(sym))
	}
	data := [][]string{header}

	for _, s := range g.States().Elements() {
		marker := ""
		if s == g.Initial() {
			marker = "->"
		}
		if g.IsFinal(s) {
			marker += "*"
		}

		dataRow := []string{marker, s}
		for _, sym := range symbols {
			targets := cells[s][sym]
			switch len(targets) {
			case 0:
				dataRow = append(dataRow, "")
			case 1:
				dataRow = append(dataRow, targets[0])
			default:
				dataRow = append(dataRow, fa.NewSet(targets...).String())
			}
		}
		data = append(data, dataRow)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, width, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
