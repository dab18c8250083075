package models

import "testing"

func intPtr(v int) *int { return &v }

func TestHasEvaluator(t *testing.T) {
	team := Team{
		MentorID:    intPtr(2),
		Reviewer1ID: intPtr(3),
		Reviewer2ID: intPtr(4),
	}

	for _, id := range []int{2, 3, 4} {
		if !team.HasEvaluator(id) {
			t.Errorf("expected teacher %d to be an evaluator", id)
		}
	}
	if team.HasEvaluator(9) {
		t.Errorf("teacher 9 is not on this team's panel")
	}

	unassigned := Team{}
	if unassigned.HasEvaluator(2) {
		t.Errorf("unassigned team has no evaluators")
	}
}

func TestEvaluators(t *testing.T) {
	team := Team{
		MentorID:    intPtr(2),
		Reviewer1ID: intPtr(3),
		Reviewer2ID: intPtr(4),
	}
	got := team.Evaluators()
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	partial := Team{MentorID: intPtr(2)}
	if got := partial.Evaluators(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected [2], got %v", got)
	}
}

func TestIsValidTermwork(t *testing.T) {
	if !IsValidTermwork(Termwork1) || !IsValidTermwork(Termwork2) {
		t.Errorf("expected both termwork rounds to be valid")
	}
	for _, tw := range []string{"", "termwork3", "TERMWORK1"} {
		if IsValidTermwork(tw) {
			t.Errorf("expected %q to be invalid", tw)
		}
	}
}
