// Package hypergraph: text parser for the "name(v1,v2,...)" benchmark format
// used by the HyperBench collection, e.g.
//
//	e1 (a, b, c),
//	e2 (b, d),
//	e3 (d, a)
//
// Vertex names are arbitrary identifiers or bare integers and are assigned
// dense integer ids in order of first appearance. Edge names are
// identifiers (an integer token in front of a name is skipped); every edge
// entry gets the next edge id in input order. Parse returns the graph together with the name tables so
// callers can report results in the input vocabulary.

package hypergraph

import (
	"fmt"

	"github.com/alecthomas/participle"
)

type parseEdge struct {
	Name     string   `(Int)? @Ident`
	Vertices []string `"(" ( @(Ident|Int) ","? )* ")"`
}

type parseGraph struct {
	Edges []parseEdge `( @@ ","?)*`
}

var parser = participle.MustBuild(&parseGraph{}, participle.UseLookahead(1))

// Naming maps the input vocabulary onto the dense vertex ids assigned during
// parsing and back.
type Naming struct {
	// VertexID maps a vertex name to its assigned id.
	VertexID map[string]Vertex

	// VertexName maps an assigned id back to the input name.
	VertexName map[Vertex]string

	// EdgeName maps an assigned edge id back to the input edge name.
	EdgeName map[EdgeID]string
}

// Parse builds a Hypergraph from its textual representation.
// Returns ErrParse (wrapped with the lexer position) on malformed input and
// ErrEmptyEdge when an edge lists no vertices.
// Complexity: O(total input length).
func Parse(s string) (*Hypergraph, *Naming, error) {
	var ast parseGraph
	if err := parser.ParseString(s, &ast); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	g := New()
	naming := &Naming{
		VertexID:   make(map[string]Vertex),
		VertexName: make(map[Vertex]string),
		EdgeName:   make(map[EdgeID]string),
	}

	// Vertex ids are assigned densely in order of first appearance.
	next := Vertex(1)
	for _, pe := range ast.Edges {
		endpoints := make([]Vertex, 0, len(pe.Vertices))
		for _, name := range pe.Vertices {
			id, ok := naming.VertexID[name]
			if !ok {
				id = next
				next++
				naming.VertexID[name] = id
				naming.VertexName[id] = name
			}
			endpoints = append(endpoints, id)
		}

		eid, err := g.AddEdge(endpoints...)
		if err != nil {
			return nil, nil, fmt.Errorf("hypergraph: edge %q: %w", pe.Name, err)
		}
		naming.EdgeName[eid] = pe.Name
	}

	return g, naming, nil
}
