// Package checkpoint persists enumeration state so long-running
// homology computations can resume after interruption.
//
// A snapshot captures the graph classes enumerated so far for one
// surface type, keyed by a random run ID. Backends implement the Store
// interface:
//   - memory: for tests and single-shot runs
//   - file: JSON files under a config directory, for CLI use
//   - redis: shared storage when several workers split one computation
//
// Snapshots are verified on restore: every stored class is rebuilt
// through the graph validator and checked against the snapshot's surface
// type, so a corrupted or mislabeled checkpoint fails loudly instead of
// poisoning a computation.
package checkpoint

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mgn/pkg/errors"
	"github.com/matzehuels/mgn/pkg/fatgraph"
	"github.com/matzehuels/mgn/pkg/generate"
)

// LevelSnapshot stores the classes of one level as raw vertex cyclic
// sequences, the only canonical serialization of a fatgraph.
type LevelSnapshot struct {
	Edges   int       `json:"edges"`
	Classes [][][]int `json:"classes"`
}

// Snapshot is the persisted state of one enumeration run.
type Snapshot struct {
	ID        string          `json:"id"`
	Genus     int             `json:"genus"`
	Punctures int             `json:"punctures"`
	CreatedAt time.Time       `json:"created_at"`
	Levels    []LevelSnapshot `json:"levels"`

	// Betti is set once the homology computation finished, making the
	// snapshot a complete record of the run.
	Betti []int `json:"betti,omitempty"`
}

// New creates an empty snapshot for (g, n) with a fresh run ID.
func New(g, n int) *Snapshot {
	return &Snapshot{
		ID:        uuid.NewString(),
		Genus:     g,
		Punctures: n,
		CreatedAt: time.Now().UTC(),
	}
}

// FromLevels captures enumerated classes into a new snapshot.
func FromLevels(g, n int, levels []generate.LevelClasses) *Snapshot {
	s := New(g, n)
	for _, lc := range levels {
		ls := LevelSnapshot{Edges: lc.Edges}
		for _, cls := range lc.Classes {
			vertices := make([][]int, cls.NumVertices())
			for i, v := range cls.Vertices() {
				vertices[i] = append([]int(nil), v...)
			}
			ls.Classes = append(ls.Classes, vertices)
		}
		s.Levels = append(s.Levels, ls)
	}
	return s
}

// Restore rebuilds the enumerated classes, validating every graph. It
// returns a CHECKPOINT_MISMATCH error when a stored class fails
// validation or does not belong to the snapshot's surface type.
func (s *Snapshot) Restore() ([]generate.LevelClasses, error) {
	out := make([]generate.LevelClasses, 0, len(s.Levels))
	for _, ls := range s.Levels {
		lc := generate.LevelClasses{Edges: ls.Edges}
		for i, vertices := range ls.Classes {
			vs := make([]fatgraph.Vertex, len(vertices))
			for j, v := range vertices {
				vs[j] = fatgraph.Vertex(v)
			}
			g, err := fatgraph.New(vs)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeCheckpointMismatch, err,
					"snapshot %s: class %d at level %d is invalid", s.ID, i, ls.Edges)
			}
			if g.Genus() != s.Genus || g.NumBoundaryCycles() != s.Punctures {
				return nil, errors.New(errors.ErrCodeCheckpointMismatch,
					"snapshot %s: class %d at level %d has type (%d, %d), want (%d, %d)",
					s.ID, i, ls.Edges, g.Genus(), g.NumBoundaryCycles(), s.Genus, s.Punctures)
			}
			if g.NumEdges() != ls.Edges {
				return nil, errors.New(errors.ErrCodeCheckpointMismatch,
					"snapshot %s: class %d at level %d has %d edges",
					s.ID, i, ls.Edges, g.NumEdges())
			}
			lc.Classes = append(lc.Classes, g)
		}
		out = append(out, lc)
	}
	return out, nil
}

// Verify runs [Snapshot.Restore] and discards the result.
func (s *Snapshot) Verify() error {
	_, err := s.Restore()
	return err
}

// Store is the interface for checkpoint storage backends.
type Store interface {
	// Get retrieves a snapshot by run ID. Returns a coded
	// CHECKPOINT_NOT_FOUND error when the ID is unknown.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Set stores a snapshot, overwriting any previous state of the run.
	Set(ctx context.Context, s *Snapshot) error

	// Delete removes a snapshot. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the stored run IDs in unspecified order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeCheckpointNotFound, "no checkpoint with run ID %s", id)
}
