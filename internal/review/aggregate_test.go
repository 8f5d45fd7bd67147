package review

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func critiquesWithScores(scores ...int) []Critique {
	out := make([]Critique, len(scores))
	for i, s := range scores {
		out[i] = Critique{ExpertID: "e", Score: s}
	}
	return out
}

func TestAggregateScores(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		want   int
	}{
		{"two experts high", []int{80, 90}, 85},
		{"two experts low", []int{60, 70}, 65},
		{"single expert", []int{42}, 42},
		{"rounds half up", []int{1, 2}, 2},
		{"all zero", []int{0, 0, 0}, 0},
		{"mixed", []int{100, 0, 50}, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := aggregateScores(critiquesWithScores(tc.scores...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("aggregate of %v: expected %d, got %d", tc.scores, tc.want, got)
			}
		})
	}
}

func TestAggregateScores_EmptyIsContractViolation(t *testing.T) {
	if _, err := aggregateScores(nil); err == nil {
		t.Fatal("empty critique list must error")
	}
}

func TestAggregateScores_Commutative(t *testing.T) {
	scores := []int{17, 92, 44, 68, 5}
	want, err := aggregateScores(critiquesWithScores(scores...))
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]int(nil), scores...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, err := aggregateScores(critiquesWithScores(shuffled...))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("aggregate not commutative: %v gave %d, want %d", shuffled, got, want)
		}
	}
}

func TestDedupe(t *testing.T) {
	in := []string{"a", "b", "a", "c", "b", "d", "e", "f"}

	got := dedupe(in, 5)

	want := []string{"a", "b", "c", "d", "e"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dedupe mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupe_ExactMatchOnly(t *testing.T) {
	// Near-duplicate phrasing does not merge; exact string equality is the
	// documented baseline.
	in := []string{"Add pricing detail", "add pricing detail", "Add pricing detail "}

	got := dedupe(in, 5)
	if len(got) != 3 {
		t.Errorf("expected 3 distinct entries, got %d: %v", len(got), got)
	}
}

func TestAggregateSection(t *testing.T) {
	sr := &SectionReview{
		SectionID: "ops",
		Critiques: []Critique{
			{Score: 80, Recommendations: []string{"r1", "r2"}, Concerns: []string{"c1"}},
			{Score: 90, Recommendations: []string{"r2", "r3", "r4", "r5"}, Concerns: []string{"c1", "c2"}},
			{Score: 70, Recommendations: []string{"r6", "r7"}, Concerns: []string{"c3", "c4"}},
		},
	}

	if err := aggregateSection(sr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sr.Score != 80 {
		t.Errorf("expected score 80, got %d", sr.Score)
	}
	wantRecs := []string{"r1", "r2", "r3", "r4", "r5"}
	if diff := cmp.Diff(wantRecs, sr.Recommendations); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
	wantConcerns := []string{"c1", "c2", "c3"}
	if diff := cmp.Diff(wantConcerns, sr.Concerns); diff != "" {
		t.Errorf("concerns mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateSection_Empty(t *testing.T) {
	sr := &SectionReview{SectionID: "ops"}
	if err := aggregateSection(sr); err == nil {
		t.Fatal("empty section must be a contract violation")
	}
}
