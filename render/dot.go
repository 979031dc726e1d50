package render

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Options controls DOT output.
type Options struct {
	// Name of the digraph, "fa" when empty.
	Name string
	// RankDir is the graphviz layout direction, "LR" when empty.
	RankDir string
	// NodeAttrs and EdgeAttrs are added to the default node and edge styles.
	NodeAttrs map[string]string
	EdgeAttrs map[string]string
}

type edgeKey struct {
	from, to string
}

// DOT writes g as a graphviz digraph. Final states are drawn as double
// circles, an invisible node points at the initial state and parallel edges
// are merged into one edge with a comma separated label.
func DOT(w io.Writer, g Graph, opts Options) error {
	name := opts.Name
	if name == "" {
		name = "fa"
	}
	rankDir := opts.RankDir
	if rankDir == "" {
		rankDir = "LR"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintf(&b, "\trankdir=%s;\n", rankDir)
	fmt.Fprintf(&b, "\tnode [%s];\n", attrList(map[string]string{"shape": "circle"}, opts.NodeAttrs))
	if len(opts.EdgeAttrs) > 0 {
		fmt.Fprintf(&b, "\tedge [%s];\n", attrList(nil, opts.EdgeAttrs))
	}

	start := "__start"
	for g.States().Has(start) {
		start = "_" + start
	}
	fmt.Fprintf(&b, "\t%s [shape=point, style=invis];\n", strconv.Quote(start))

	for _, s := range g.States().Elements() {
		if g.IsFinal(s) {
			fmt.Fprintf(&b, "\t%s [shape=doublecircle];\n", strconv.Quote(s))
		} else {
			fmt.Fprintf(&b, "\t%s;\n", strconv.Quote(s))
		}
	}
	fmt.Fprintf(&b, "\t%s -> %s;\n", strconv.Quote(start), strconv.Quote(g.Initial()))

	labels := make(map[edgeKey][]string)
	var edges []edgeKey
	for _, t := range g.Transitions() {
		k := edgeKey{t.From, t.To}
		if _, ok := labels[k]; !ok {
			edges = append(edges, k)
		}
		labels[k] = append(labels[k], symbolLabel(t.Symbol))
	}
	slices.SortFunc(edges, func(x, y edgeKey) int {
		if c := strings.Compare(x.from, y.from); c != 0 {
			return c
		}
		return strings.Compare(x.to, y.to)
	})
	for _, k := range edges {
		fmt.Fprintf(&b, "\t%s -> %s [label=%s];\n",
			strconv.Quote(k.from), strconv.Quote(k.to), strconv.Quote(strings.Join(labels[k], ", ")))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// attrList renders base overridden by extra as k=v pairs in key order.
func attrList(base, extra map[string]string) string {
	attrs := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		attrs[k] = v
	}
	for k, v := range extra {
		attrs[k] = v
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + strconv.Quote(attrs[k])
	}
	return strings.Join(parts, ", ")
}
