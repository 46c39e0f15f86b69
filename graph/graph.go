// Package graph topologically sorts the instance-UID dependency graph
// extracted from a partition's byte objects, so the header package's
// builder can materialize every dependent before the object that
// refers to it.
package graph

import (
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/ugparu/mxfheader/mxfuid"
)

// color marks a node's visitation state during the depth-first walk.
type color int

const (
	none color = iota
	temporary
	permanent
)

// Graph is an adjacency list keyed by instance UID, built from each
// byte object's StrongRefs list. A UID referenced but never itself a
// key (a dangling reference) has no outgoing edges of its own but may
// still appear as an edge target.
type Graph struct {
	edges map[mxfuid.MXFUid][]mxfuid.MXFUid
	nodes []mxfuid.MXFUid // insertion order, for deterministic sort output
}

// New builds an empty Graph.
func New() *Graph {
	return &Graph{edges: make(map[mxfuid.MXFUid][]mxfuid.MXFUid)}
}

// AddNode registers uid as a node even if it has no outgoing edges,
// preserving first-encounter order for deterministic topological sort
// output when the input has no dependency constraints between two
// nodes.
func (g *Graph) AddNode(uid mxfuid.MXFUid) {
	if _, exists := g.edges[uid]; exists {
		return
	}
	g.edges[uid] = nil
	g.nodes = append(g.nodes, uid)
}

// AddEdge records that uid depends on dependsOn: dependsOn must be
// materialized before uid. A dependsOn target that was never itself
// registered via AddNode is still added to keep the adjacency list
// self-consistent; the builder treats a missing dependent as a
// separate, non-fatal condition it checks for on its own.
func (g *Graph) AddEdge(uid, dependsOn mxfuid.MXFUid) {
	g.AddNode(uid)
	g.edges[uid] = append(g.edges[uid], dependsOn)
}

// TopologicalSort returns node UIDs ordered so that every dependency
// precedes its dependent, using a three-color depth-first search.
// Returns a CyclicGraphError naming the instance UID at which the
// cycle was detected.
func (g *Graph) TopologicalSort() ([]mxfuid.MXFUid, error) {
	colors := make(map[mxfuid.MXFUid]color, len(g.nodes))
	var order []mxfuid.MXFUid

	var visit func(uid mxfuid.MXFUid) error
	visit = func(uid mxfuid.MXFUid) error {
		switch colors[uid] {
		case permanent:
			return nil
		case temporary:
			return &mxferrors.CyclicGraphError{UID: uid.Hex()}
		}

		colors[uid] = temporary
		for _, dep := range g.edges[uid] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		colors[uid] = permanent
		order = append(order, uid)
		return nil
	}

	for _, uid := range g.nodes {
		if err := visit(uid); err != nil {
			return nil, err
		}
	}

	return order, nil
}
