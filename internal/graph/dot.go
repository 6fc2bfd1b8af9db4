package graph

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// GraphvizFormat selects the go-graphviz output.
type GraphvizFormat string

const (
	FormatDOT GraphvizFormat = "dot"
	FormatSVG GraphvizFormat = "svg"
)

func (f GraphvizFormat) toGraphviz() (graphviz.Format, error) {
	switch f {
	case FormatDOT:
		return graphviz.XDOT, nil
	case FormatSVG:
		return graphviz.SVG, nil
	default:
		return "", fmt.Errorf("graph: unsupported graphviz format %q", f)
	}
}

// ExportGraphviz lays the graph out with the dot engine and writes it in
// format. Edges pointing at unknown nodes are dropped, as in Render, and edges
// touching a node in v's highlight set are drawn in the accent colour with the
// wider pen. Zoom and pan are ignored; dot does its own layout.
func ExportGraphviz(ctx context.Context, w io.Writer, format GraphvizFormat, data models.GraphData, p Palette, v ViewState) error {
	gvFormat, err := format.toGraphviz()
	if err != nil {
		return err
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("graph: create graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.DOT)

	g, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("graph: create graph: %w", err)
	}
	defer g.Close()
	g.SetRankDir(cgraph.BTRank)
	g.SetLabel("Task Dependency Graph")

	nodes := make(map[int64]*cgraph.Node, len(data.Nodes))
	for _, n := range data.Nodes {
		name := strconv.FormatInt(n.ID, 10)
		gvNode, err := g.CreateNodeByName(name)
		if err != nil {
			return fmt.Errorf("graph: create node %s: %w", name, err)
		}
		gvNode.SetLabel(name + "\n" + n.Title)
		gvNode.SetShape(cgraph.CircleShape)
		gvNode.SetStyle(cgraph.FilledNodeStyle)
		gvNode.SetFillColor(string(p.StatusColor(n.Status)))
		gvNode.SetFontColor(string(p.Label))
		nodes[n.ID] = gvNode
	}
	for _, e := range data.Edges {
		from, to := nodes[e.TaskID], nodes[e.DependsOnID]
		if from == nil || to == nil {
			continue
		}
		edge, err := g.CreateEdgeByName("", from, to)
		if err != nil {
			return fmt.Errorf("graph: create edge %d->%d: %w", e.TaskID, e.DependsOnID, err)
		}
		if v.Highlighted(e.TaskID) || v.Highlighted(e.DependsOnID) {
			edge.SetColor(string(p.EdgeHighlight))
			edge.SetPenWidth(config.HighlightedEdgeWidth)
		} else {
			edge.SetColor(string(p.Edge))
		}
	}

	if err := gv.Render(ctx, g, gvFormat, w); err != nil {
		return fmt.Errorf("graph: render %s: %w", format, err)
	}
	return nil
}

// GraphDataFromTasks builds the graph-data shape from a task list.
func GraphDataFromTasks(tasks []models.Task) models.GraphData {
	data := models.GraphData{Nodes: make([]models.GraphNode, 0, len(tasks))}
	for _, t := range tasks {
		data.Nodes = append(data.Nodes, models.GraphNode{ID: t.ID, Title: t.Title, Status: t.Status})
	}
	data.Edges = models.EdgesFromTasks(tasks)
	return data
}
