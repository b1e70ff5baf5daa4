package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dkresling/roadway/core"
)

// networkDoc is the on-disk JSON shape of a road network.
//
//	{
//	  "capacity": 40,
//	  "nodes": [{"id": "A", "station": true}, {"id": "B"}],
//	  "edges": [{"from": "A", "to": "B", "distance": 10,
//	             "congestion": 0.3, "toll": 2, "one_way": false}]
//	}
type networkDoc struct {
	Capacity float64   `json:"capacity"`
	Nodes    []nodeDoc `json:"nodes"`
	Edges    []edgeDoc `json:"edges"`
}

type nodeDoc struct {
	ID      string `json:"id"`
	Station bool   `json:"station"`
}

type edgeDoc struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Distance   float64 `json:"distance"`
	Congestion float64 `json:"congestion"`
	Toll       float64 `json:"toll"`
	OneWay     bool    `json:"one_way"`
}

// FileSource loads a network from a JSON document on disk.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource for the given path.
func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, ErrMissingPath
	}

	return &FileSource{path: path}, nil
}

// Load reads and validates the document, building the network node by node
// so a broken entry is reported with its position in the file.
func (s *FileSource) Load(_ context.Context) (*core.Network, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var doc networkDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", s.path, err)
	}

	return buildNetwork(doc)
}

// Close is a no-op: the file is fully consumed by Load.
func (s *FileSource) Close(context.Context) error { return nil }

func buildNetwork(doc networkDoc) (*core.Network, error) {
	if doc.Capacity <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadCapacity, doc.Capacity)
	}
	n := core.NewNetwork(doc.Capacity)

	for i, nd := range doc.Nodes {
		opts := []core.NodeOption{}
		if nd.Station {
			opts = append(opts, core.WithStation())
		}
		if err := n.AddNode(nd.ID, opts...); err != nil {
			return nil, fmt.Errorf("store: node %d (%q): %w", i, nd.ID, err)
		}
	}

	for i, ed := range doc.Edges {
		opts := []core.EdgeOption{}
		if ed.OneWay {
			opts = append(opts, core.WithOneWay())
		}
		if err := n.AddEdge(ed.From, ed.To, ed.Distance, ed.Congestion, ed.Toll, opts...); err != nil {
			return nil, fmt.Errorf("store: edge %d (%s->%s): %w", i, ed.From, ed.To, err)
		}
	}

	return n, nil
}
