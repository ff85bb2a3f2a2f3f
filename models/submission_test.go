package models

import (
	"encoding/json"
	"testing"
)

func TestProofSlotCatalogueSize(t *testing.T) {
	if len(ProofSlotColumns) != 35 {
		t.Fatalf("proof catalogue has %d slots, want 35", len(ProofSlotColumns))
	}
	if len(ScoreSlotColumns) != 35 {
		t.Fatalf("score catalogue has %d slots, want 35", len(ScoreSlotColumns))
	}
}

func TestProofAssignmentsOnlyIncludeSuppliedSlots(t *testing.T) {
	x := "http://x"
	z := "http://z"
	slots := ProofSlots{L1_1: &x, L5_5: &z}

	got := slots.Assignments()
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2: %v", len(got), got)
	}
	if got["l1_1"] != "http://x" || got["l5_5"] != "http://z" {
		t.Errorf("unexpected assignments: %v", got)
	}
}

func TestScoreAssignmentsOnlyIncludeSuppliedSlots(t *testing.T) {
	eighty := 80
	zero := 0
	slots := ScoreSlots{A2_3: &eighty, A4_6: &zero}

	got := slots.Assignments()
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2: %v", len(got), got)
	}
	if got["a2_3"] != 80 || got["a4_6"] != 0 {
		t.Errorf("unexpected assignments: %v", got)
	}
}

// The JSON field names are the wire contract; every slot column must bind
// from its own key and unknown keys must vanish.
func TestSubmissionJSONBinding(t *testing.T) {
	payload := []byte(`{"faculty_id":"VIT0021","year":2024,"l2_3":"http://a","l4_1":"http://b","bogus":"x"}`)

	var sub Submission
	if err := json.Unmarshal(payload, &sub); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sub.FacultyID != "VIT0021" || sub.Year != 2024 {
		t.Errorf("key fields: %q %d", sub.FacultyID, sub.Year)
	}
	if sub.L2_3 == nil || *sub.L2_3 != "http://a" {
		t.Errorf("l2_3 = %v", sub.L2_3)
	}
	if sub.L4_1 == nil || *sub.L4_1 != "http://b" {
		t.Errorf("l4_1 = %v", sub.L4_1)
	}

	assignments := sub.Assignments()
	if len(assignments) != 2 {
		t.Errorf("assignments = %v, want exactly the two supplied slots", assignments)
	}
}

// Legacy rows have no is_draft value; decoding them must yield a final
// (non-draft) submission.
func TestMissingDraftFlagMeansFinal(t *testing.T) {
	var sub Submission
	if err := json.Unmarshal([]byte(`{"faculty_id":"VIT0021","year":2020}`), &sub); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sub.IsDraft {
		t.Error("absent is_draft decoded as true")
	}
}
