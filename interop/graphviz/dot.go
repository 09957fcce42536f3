// Package graphviz renders an EnvireGraph as a GraphViz node-link diagram,
// one frame per node and one line per logical (undirected) connection.
// The DOT source is an undirected graph built by hand as a string, then
// handed to goccy/go-graphviz for layout.
package graphviz

import (
	"bytes"
	"context"
	"fmt"

	govz "github.com/goccy/go-graphviz"

	"github.com/katalvlaran/envgraph/envgraph"
	"github.com/katalvlaran/envgraph/spatial"
)

// Options configures DOT rendering.
type Options struct {
	// Detailed includes each edge's translation vector in its label.
	// When false, edges carry no label at all.
	Detailed bool
}

// ToDOT renders eg as GraphViz DOT source. Frames become nodes labeled by
// their FrameId; each logical connection becomes one undirected-style
// edge (rendered as a non-arrowed line, since a transform and its inverse
// are the same physical connection, not two distinct relationships).
func ToDOT(eg *envgraph.EnvireGraph, opts Options) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	ids := eg.FrameIDs()
	for _, id := range ids {
		fmt.Fprintf(&buf, "  %q;\n", id.String())
	}

	buf.WriteString("\n")
	for _, id := range ids {
		neighbors, err := eg.Neighbors(id)
		if err != nil {
			return "", fmt.Errorf("ToDOT: Neighbors(%s): %w", id, err)
		}
		for _, n := range neighbors {
			if n <= id {
				continue // already emitted from the other endpoint, or a self-loop
			}
			attrs, err := edgeAttrs(eg, id, n, opts)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&buf, "  %q -- %q%s;\n", id.String(), n.String(), attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func edgeAttrs(eg *envgraph.EnvireGraph, from, to spatial.FrameId, opts Options) (string, error) {
	if !opts.Detailed {
		return "", nil
	}
	edge, err := eg.GetEdge(from, to)
	if err != nil {
		return "", fmt.Errorf("edgeAttrs: GetEdge(%s,%s): %w", from, to, err)
	}
	tr := edge.Transform().Translation
	label := fmt.Sprintf("%.3f, %.3f, %.3f", tr.X, tr.Y, tr.Z)
	return fmt.Sprintf(" [label=%q]", label), nil
}

// RenderSVG renders a DOT graph to SVG bytes using GraphViz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := govz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("RenderSVG: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := govz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("RenderSVG: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, govz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("RenderSVG: render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT graph to PNG bytes using GraphViz.
func RenderPNG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := govz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("RenderPNG: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := govz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("RenderPNG: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, govz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("RenderPNG: render: %w", err)
	}
	return buf.Bytes(), nil
}
