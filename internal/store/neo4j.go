package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dkresling/roadway/core"
)

// Graph data model:
//
//	(:Waypoint {id: "A", station: true})
//	(:Waypoint)-[:ROAD {distance, congestion, toll, one_way}]->(:Waypoint)
//
// A ROAD relationship represents a bidirectional road unless one_way is set,
// matching the JSON file format. Tank capacity is not stored in the graph;
// it comes from Options.
const (
	waypointQuery = `MATCH (w:Waypoint)
RETURN w.id AS id, coalesce(w.station, false) AS station`

	roadQuery = `MATCH (a:Waypoint)-[r:ROAD]->(b:Waypoint)
RETURN a.id AS from, b.id AS to, r.distance AS distance,
       coalesce(r.congestion, 0.0) AS congestion,
       coalesce(r.toll, 0.0) AS toll,
       coalesce(r.one_way, false) AS one_way`
)

// Options configures a Neo4jSource.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
	Capacity       float64
}

// Neo4jSource loads a network over Bolt using the official Neo4j driver.
type Neo4jSource struct {
	driver   neo4j.DriverWithContext
	database string
	capacity float64
}

// NewNeo4jSource establishes a Bolt connection and verifies it before
// returning. Credentials are optional; an empty username selects NoAuth.
func NewNeo4jSource(ctx context.Context, opts Options) (*Neo4jSource, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}
	if opts.Capacity <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadCapacity, opts.Capacity)
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("store: create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("store: verify graph connectivity: %w", err)
	}

	return &Neo4jSource{
		driver:   driver,
		database: opts.Database,
		capacity: opts.Capacity,
	}, nil
}

// Load reads every waypoint and road from the graph into a fresh network.
func (s *Neo4jSource) Load(ctx context.Context) (*core.Network, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	n := core.NewNetwork(s.capacity)

	res, err := session.Run(ctx, waypointQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("store: query waypoints: %w", err)
	}
	for res.Next(ctx) {
		rec := res.Record()
		id := asString(value(rec, "id"))
		opts := []core.NodeOption{}
		if asBool(value(rec, "station")) {
			opts = append(opts, core.WithStation())
		}
		if err := n.AddNode(id, opts...); err != nil {
			return nil, fmt.Errorf("store: waypoint %q: %w", id, err)
		}
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("store: read waypoints: %w", err)
	}

	res, err = session.Run(ctx, roadQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("store: query roads: %w", err)
	}
	for res.Next(ctx) {
		rec := res.Record()
		from := asString(value(rec, "from"))
		to := asString(value(rec, "to"))
		opts := []core.EdgeOption{}
		if asBool(value(rec, "one_way")) {
			opts = append(opts, core.WithOneWay())
		}
		err := n.AddEdge(from, to,
			asFloat(value(rec, "distance")),
			asFloat(value(rec, "congestion")),
			asFloat(value(rec, "toll")),
			opts...)
		if err != nil {
			return nil, fmt.Errorf("store: road %s->%s: %w", from, to, err)
		}
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("store: read roads: %w", err)
	}

	return n, nil
}

// Close releases the driver's connection pool.
func (s *Neo4jSource) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func value(rec *neo4j.Record, key string) any {
	v, _ := rec.Get(key)
	return v
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// asFloat accepts both integer and float properties; Neo4j stores whole
// numbers as int64 even when written as distances.
func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	default:
		return 0
	}
}
