package combinatorics

import (
	"reflect"
	"testing"
)

func TestPartitions(t *testing.T) {
	cases := []struct {
		n, k, minPart int
		want          [][]int
	}{
		// Valence sequences for the (0,3) vertex counts: one 4-valent
		// vertex, or two 3-valent ones.
		{4, 1, 3, [][]int{{4}}},
		{6, 2, 3, [][]int{{3, 3}}},
		// No partition of 8 into 3 parts all >= 3.
		{8, 3, 3, nil},
		{10, 3, 3, [][]int{{4, 3, 3}}},
		{12, 3, 3, [][]int{{6, 3, 3}, {5, 4, 3}, {4, 4, 4}}},
		{5, 2, 1, [][]int{{4, 1}, {3, 2}}},
		{3, 5, 1, nil},
	}
	for _, c := range cases {
		got := Partitions(c.n, c.k, c.minPart)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Partitions(%d, %d, %d) = %v, want %v", c.n, c.k, c.minPart, got, c.want)
		}
	}
}

func TestPartitionsInvariants(t *testing.T) {
	for _, p := range Partitions(18, 4, 3) {
		sum := 0
		prev := 1 << 30
		for _, part := range p {
			if part < 3 {
				t.Errorf("partition %v has part below minimum", p)
			}
			if part > prev {
				t.Errorf("partition %v is not descending", p)
			}
			prev = part
			sum += part
		}
		if sum != 18 {
			t.Errorf("partition %v does not sum to 18", p)
		}
	}
}
