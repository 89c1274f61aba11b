// Package sprite holds the static sprite-state graph and the voice bank description
package sprite

import (
	"errors"
	"fmt"
)

// Edge names a transition kind out of a sprite state
type Edge uint8

const (
	EdgeEyeOpen Edge = iota
	EdgeEyeClose
	EdgeMouthOpen
	EdgeMouthClose
	edgeCount
)

var edgeNames = [edgeCount]string{"eye_open", "eye_close", "mouth_open", "mouth_close"}

func (e Edge) String() string {
	if e < edgeCount {
		return edgeNames[e]
	}
	return fmt.Sprintf("Edge(%d)", e)
}

// ParseEdge maps a manifest key to an Edge
func ParseEdge(s string) (Edge, bool) {
	for i, n := range edgeNames {
		if n == s {
			return Edge(i), true
		}
	}
	return 0, false
}

var (
	ErrEmptyManifest = errors.New("sprite: manifest has no states")
	ErrUnknownState  = errors.New("sprite: unknown state")
	ErrEdgeRange     = errors.New("sprite: edge target out of range")
	ErrUnknownEdge   = errors.New("sprite: unknown edge")
)

// Node is one sprite state; Image and Face are renderer hints
type Node struct {
	Name  string
	Image string
	Face  string
	edges [edgeCount]int
}

// Target returns the destination of edge e, -1 when absent
func (n *Node) Target(e Edge) int {
	if e >= edgeCount {
		return -1
	}
	return n.edges[e]
}

// Graph is immutable once built; traversal never mutates it
type Graph struct {
	nodes []Node
}

// Len returns the number of states
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Valid reports whether idx names a state
func (g *Graph) Valid(idx int) bool {
	return idx >= 0 && idx < len(g.nodes)
}

// Node returns state idx; panics on invalid index like a slice would
func (g *Graph) Node(idx int) *Node {
	return &g.nodes[idx]
}

// Next follows edge e from cur; ok is false when cur is invalid or the edge is absent
func (g *Graph) Next(cur int, e Edge) (int, bool) {
	if !g.Valid(cur) || e >= edgeCount {
		return cur, false
	}
	t := g.nodes[cur].edges[e]
	if t < 0 {
		return cur, false
	}
	return t, true
}

// Builder accumulates nodes and edges, validating targets on Build
type Builder struct {
	nodes []Node
	err   error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a state with no edges and returns its index
func (b *Builder) Add(name, image, face string) int {
	n := Node{Name: name, Image: image, Face: face}
	for i := range n.edges {
		n.edges[i] = -1
	}
	b.nodes = append(b.nodes, n)
	return len(b.nodes) - 1
}

// Link sets edge e from -> to; range errors are reported by Build
func (b *Builder) Link(from int, e Edge, to int) *Builder {
	if b.err != nil {
		return b
	}
	if from < 0 || from >= len(b.nodes) || e >= edgeCount {
		b.err = fmt.Errorf("%w: %d --%s--> %d", ErrEdgeRange, from, e, to)
		return b
	}
	b.nodes[from].edges[e] = to
	return b
}

// Build validates all edge targets and freezes the graph
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.nodes) == 0 {
		return nil, ErrEmptyManifest
	}
	for i := range b.nodes {
		for e, t := range b.nodes[i].edges {
			if t < -1 || t >= len(b.nodes) {
				return nil, fmt.Errorf("%w: %s --%s--> %d", ErrEdgeRange, b.nodes[i].Name, Edge(e), t)
			}
		}
	}
	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	return &Graph{nodes: nodes}, nil
}
