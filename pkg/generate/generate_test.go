package generate

import (
	"context"
	"testing"

	"github.com/matzehuels/mgn/pkg/fatgraph"
)

func TestGraphsSphereThreePunctures(t *testing.T) {
	levels, err := Graphs(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("Graphs: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(levels))
	}
	if levels[0].Edges != 2 || len(levels[0].Classes) != 1 {
		t.Errorf("level 2: %d classes, want 1", len(levels[0].Classes))
	}
	if levels[1].Edges != 3 || len(levels[1].Classes) != 2 {
		t.Errorf("level 3: %d classes, want 2", len(levels[1].Classes))
	}

	// The single two-edge class is the 4-valent vertex with nested loops.
	quad := fatgraph.MustNew([]fatgraph.Vertex{{0, 0, 1, 1}})
	if !fatgraph.AreIsomorphic(levels[0].Classes[0], quad) {
		t.Errorf("level-2 class %v is not the nested-loop vertex", levels[0].Classes[0])
	}

	// The two three-edge classes are the theta graph and the dumbbell.
	theta := fatgraph.MustNew([]fatgraph.Vertex{{0, 1, 2}, {0, 2, 1}})
	dumb := fatgraph.MustNew([]fatgraph.Vertex{{0, 1, 1}, {0, 2, 2}})
	for _, want := range []*fatgraph.Graph{theta, dumb} {
		found := false
		for _, cls := range levels[1].Classes {
			if fatgraph.AreIsomorphic(cls, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no level-3 class isomorphic to %v", want)
		}
	}
}

func TestGraphsTorusOnePuncture(t *testing.T) {
	levels, err := Graphs(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Graphs: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(levels))
	}
	for _, lvl := range levels {
		if len(lvl.Classes) != 1 {
			t.Errorf("level %d: %d classes, want 1", lvl.Edges, len(lvl.Classes))
		}
	}
}

func TestGraphsClassInvariants(t *testing.T) {
	levels, err := Graphs(context.Background(), 0, 4)
	if err != nil {
		t.Fatalf("Graphs: %v", err)
	}
	for _, lvl := range levels {
		for i, cls := range lvl.Classes {
			if cls.Genus() != 0 || cls.NumBoundaryCycles() != 4 {
				t.Errorf("level %d class %d: (g, n) = (%d, %d), want (0, 4)",
					lvl.Edges, i, cls.Genus(), cls.NumBoundaryCycles())
			}
			if cls.NumEdges() != lvl.Edges {
				t.Errorf("level %d class %d has %d edges", lvl.Edges, i, cls.NumEdges())
			}
			for j := 0; j < i; j++ {
				if fatgraph.AreIsomorphic(cls, lvl.Classes[j]) {
					t.Errorf("level %d: classes %d and %d are isomorphic", lvl.Edges, j, i)
				}
			}
		}
	}
}

func TestLevelGraphsGenusTwoBottomLevel(t *testing.T) {
	// The bottom level for (2, 1) has 4 edges: a single 8-valent vertex,
	// e.g. (0 1 2 3 0 1 2 3). The level range must not start above it.
	min, _, err := LevelRange(2, 1)
	if err != nil {
		t.Fatalf("LevelRange: %v", err)
	}
	if min != 4 {
		t.Fatalf("LevelRange(2, 1) min = %d, want 4", min)
	}
	lc, err := NewGenerator(nil).LevelGraphs(context.Background(), 2, 1, 4)
	if err != nil {
		t.Fatalf("LevelGraphs: %v", err)
	}
	if len(lc.Classes) == 0 {
		t.Fatal("no four-edge classes for genus 2 with one puncture")
	}
	for i, cls := range lc.Classes {
		if cls.Genus() != 2 || cls.NumBoundaryCycles() != 1 || cls.NumVertices() != 1 {
			t.Errorf("class %d: (g, n, V) = (%d, %d, %d), want (2, 1, 1)",
				i, cls.Genus(), cls.NumBoundaryCycles(), cls.NumVertices())
		}
	}
}

func TestGraphsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Graphs(ctx, 0, 5); err == nil {
		t.Error("cancelled enumeration must return an error")
	}
}

func TestLevelGraphsOutsideRange(t *testing.T) {
	lc, err := NewGenerator(nil).LevelGraphs(context.Background(), 0, 3, 7)
	if err != nil {
		t.Fatalf("LevelGraphs: %v", err)
	}
	if len(lc.Classes) != 0 {
		t.Errorf("out-of-range level returned %d classes", len(lc.Classes))
	}
}
