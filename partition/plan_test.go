package partition_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlpack/partition"
)

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects invalid configurations before any
// ownership is computed.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		n, b, p, q int
		policy     partition.Policy
		err        error
	}{
		{"NotTileable", 100, 16, 2, 2, partition.PolicyPQ, partition.ErrNotTileable},
		{"ZeroBlock", 64, 0, 2, 2, partition.PolicyPQ, partition.ErrNotTileable},
		{"ZeroMatrix", 0, 16, 2, 2, partition.PolicyPQ, partition.ErrNotTileable},
		{"ZeroRows", 64, 16, 0, 2, partition.PolicyPQ, partition.ErrGridShape},
		{"ZeroCols", 64, 16, 2, 0, partition.PolicyPQ, partition.ErrGridShape},
		{"BadPolicy", 64, 16, 2, 2, partition.Policy(42), partition.ErrUnsupportedPolicy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := partition.New(tc.n, tc.b, tc.p, tc.q, tc.policy)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%d,%d,%v) error = %v; want %v",
					tc.n, tc.b, tc.p, tc.q, tc.policy, err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Ownership Tests
//----------------------------------------------------------------------------//

// TestOwner_TotalAndDisjoint checks that under both policies every block of
// the nb×nb grid appears in exactly one node's ownership set.
func TestOwner_TotalAndDisjoint(t *testing.T) {
	cases := []struct {
		name       string
		n, b, p, q int
		policy     partition.Policy
	}{
		{"PQ_2x2", 64, 16, 2, 2, partition.PolicyPQ},
		{"PQ_2x3", 96, 16, 2, 3, partition.PolicyPQ},
		{"PQ_Cyclic", 128, 16, 2, 2, partition.PolicyPQ},
		{"PQ_SingleNode", 64, 16, 1, 1, partition.PolicyPQ},
		{"Diagonal_SingleNode", 64, 16, 1, 1, partition.PolicyDiagonal},
		{"Diagonal_2x2", 64, 16, 2, 2, partition.PolicyDiagonal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pl, err := partition.New(tc.n, tc.b, tc.p, tc.q, tc.policy)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			nb := pl.NumBlocksPerSide()

			seen := make(map[partition.BlockID]int)
			for r := 0; r < tc.p; r++ {
				for c := 0; c < tc.q; c++ {
					for _, id := range pl.Owned(partition.NodeID{Row: r, Col: c}) {
						seen[id]++
					}
				}
			}
			if len(seen) != nb*nb {
				t.Fatalf("ownership covers %d blocks; want %d", len(seen), nb*nb)
			}
			for id, count := range seen {
				if count != 1 {
					t.Errorf("block %v owned %d times; want 1", id, count)
				}
			}

			// Owner must agree with the ownership lists.
			for i := 0; i < nb; i++ {
				for j := 0; j < nb; j++ {
					node, err := pl.Owner(i, j)
					if err != nil {
						t.Fatalf("Owner(%d,%d) error: %v", i, j, err)
					}
					found := false
					for _, id := range pl.Owned(node) {
						if id == (partition.BlockID{Row: i, Col: j}) {
							found = true
							break
						}
					}
					if !found {
						t.Errorf("Owner(%d,%d)=%v but block missing from Owned list", i, j, node)
					}
				}
			}
		})
	}
}

// TestOwner_PQCyclic pins the block-cyclic formula on a grid smaller than
// the block grid, where wrap-around ownership matters.
func TestOwner_PQCyclic(t *testing.T) {
	pl, err := partition.New(64, 8, 2, 2, partition.PolicyPQ)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	cases := []struct {
		i, j int
		want partition.NodeID
	}{
		{0, 0, partition.NodeID{Row: 0, Col: 0}},
		{1, 0, partition.NodeID{Row: 1, Col: 0}},
		{2, 3, partition.NodeID{Row: 0, Col: 1}},
		{7, 7, partition.NodeID{Row: 1, Col: 1}},
		{4, 6, partition.NodeID{Row: 0, Col: 0}},
	}
	for _, tc := range cases {
		got, err := pl.Owner(tc.i, tc.j)
		if err != nil {
			t.Fatalf("Owner(%d,%d) error: %v", tc.i, tc.j, err)
		}
		if got != tc.want {
			t.Errorf("Owner(%d,%d) = %v; want %v", tc.i, tc.j, got, tc.want)
		}
	}

	if _, err = pl.Owner(8, 0); !errors.Is(err, partition.ErrBlockRange) {
		t.Errorf("Owner(8,0) error = %v; want ErrBlockRange", err)
	}
}

// TestLocalLayout verifies ascending (row,col) local ordering and buffer
// sizing for a block-cyclic plan.
func TestLocalLayout(t *testing.T) {
	pl, err := partition.New(64, 16, 2, 2, partition.PolicyPQ)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	node := partition.NodeID{Row: 0, Col: 0}
	owned := pl.Owned(node)

	want := []partition.BlockID{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	if !reflect.DeepEqual(owned, want) {
		t.Fatalf("Owned(%v) = %v; want %v", node, owned, want)
	}
	for idx, id := range owned {
		got, err := pl.LocalIndex(id)
		if err != nil {
			t.Fatalf("LocalIndex(%v) error: %v", id, err)
		}
		if got != idx {
			t.Errorf("LocalIndex(%v) = %d; want %d", id, got, idx)
		}
	}
	if got := pl.LocalBufferLen(node); got != 4*16*16 {
		t.Errorf("LocalBufferLen = %d; want %d", got, 4*16*16)
	}
}

// TestIdempotence ensures re-running New with identical inputs yields an
// identical ownership map: the plan is a pure function with no hidden state.
func TestIdempotence(t *testing.T) {
	build := func() map[partition.NodeID][]partition.BlockID {
		pl, err := partition.New(96, 16, 2, 3, partition.PolicyPQ)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		out := make(map[partition.NodeID][]partition.BlockID)
		for r := 0; r < 2; r++ {
			for c := 0; c < 3; c++ {
				node := partition.NodeID{Row: r, Col: c}
				out[node] = append([]partition.BlockID(nil), pl.Owned(node)...)
			}
		}
		return out
	}
	first, second := build(), build()
	if !reflect.DeepEqual(first, second) {
		t.Error("two plans built from identical inputs differ")
	}
}

// TestPolicyRoundTrip checks the policy name mapping used by the CLI.
func TestPolicyRoundTrip(t *testing.T) {
	for _, p := range []partition.Policy{partition.PolicyDiagonal, partition.PolicyPQ} {
		got, err := partition.ParsePolicy(p.String())
		if err != nil {
			t.Fatalf("ParsePolicy(%q) error: %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePolicy(%q) = %v; want %v", p, got, p)
		}
	}
	if _, err := partition.ParsePolicy("roundrobin"); !errors.Is(err, partition.ErrUnsupportedPolicy) {
		t.Errorf("ParsePolicy(roundrobin) error = %v; want ErrUnsupportedPolicy", err)
	}
}
