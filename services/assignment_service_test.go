package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
)

func TestDeriveReviewers(t *testing.T) {
	tests := []struct {
		name      string
		panel     []int
		mentor    int
		reviewer1 int
		reviewer2 int
		wantErr   error
	}{
		{
			name:      "mentor in middle seat",
			panel:     []int{1, 2, 3},
			mentor:    2,
			reviewer1: 1,
			reviewer2: 3,
		},
		{
			name:      "mentor in first seat",
			panel:     []int{1, 2, 3},
			mentor:    1,
			reviewer1: 2,
			reviewer2: 3,
		},
		{
			name:      "mentor in last seat keeps panel order",
			panel:     []int{7, 4, 9},
			mentor:    9,
			reviewer1: 7,
			reviewer2: 4,
		},
		{
			name:    "mentor outside panel",
			panel:   []int{1, 2, 3},
			mentor:  5,
			wantErr: ErrInvalidAssignment,
		},
		{
			name:    "panel too small",
			panel:   []int{1, 2},
			mentor:  1,
			wantErr: ErrMalformedPanel,
		},
		{
			name:    "panel too large",
			panel:   []int{1, 2, 3, 4},
			mentor:  1,
			wantErr: ErrMalformedPanel,
		},
		{
			name:    "duplicate mentor seat",
			panel:   []int{2, 2, 3},
			mentor:  2,
			wantErr: ErrMalformedPanel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r1, r2, err := DeriveReviewers(tt.panel, tt.mentor)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r1 != tt.reviewer1 || r2 != tt.reviewer2 {
				t.Fatalf("expected reviewers (%d, %d), got (%d, %d)", tt.reviewer1, tt.reviewer2, r1, r2)
			}
		})
	}
}

func TestAssign_PersistsPanelMentorAndReviewers(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `teams` WHERE team_id = .* AND delete_at IS NULL"),
			columns: []string{"team_id", "team_name"},
			rows:    [][]driver.Value{{int64(10), "Team Atlas"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `panels` WHERE panel_id = .* AND delete_at IS NULL"),
			columns: []string{"panel_id", "name"},
			rows:    [][]driver.Value{{int64(4), "Panel A"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `panel_teachers` WHERE panel_id = .* ORDER BY position ASC"),
			args:    []driver.Value{int64(4)},
			columns: []string{"panel_teacher_id", "panel_id", "teacher_id", "position"},
			rows: [][]driver.Value{
				{int64(1), int64(4), int64(7), int64(1)},
				{int64(2), int64(4), int64(5), int64(2)},
				{int64(3), int64(4), int64(9), int64(3)},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `teams` SET .*mentor_id.*panel_id.*reviewer1_id.*reviewer2_id.* WHERE team_id = "),
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewAssignmentService(db)
	got, err := svc.Assign(10, 4, 5)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if got.Reviewer1ID != 7 || got.Reviewer2ID != 9 {
		t.Fatalf("expected reviewers (7, 9), got (%d, %d)", got.Reviewer1ID, got.Reviewer2ID)
	}
	if got.PanelID != 4 || got.MentorID != 5 || got.TeamID != 10 {
		t.Fatalf("unexpected assignment: %+v", got)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestAssign_RejectsMentorOutsidePanel(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `teams` WHERE team_id = "),
			columns: []string{"team_id", "team_name"},
			rows:    [][]driver.Value{{int64(10), "Team Atlas"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `panels` WHERE panel_id = "),
			columns: []string{"panel_id", "name"},
			rows:    [][]driver.Value{{int64(4), "Panel A"}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `panel_teachers` WHERE panel_id = "),
			columns: []string{"panel_teacher_id", "panel_id", "teacher_id", "position"},
			rows: [][]driver.Value{
				{int64(1), int64(4), int64(7), int64(1)},
				{int64(2), int64(4), int64(5), int64(2)},
				{int64(3), int64(4), int64(9), int64(3)},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewAssignmentService(db)
	if _, err := svc.Assign(10, 4, 99); !errors.Is(err, ErrInvalidAssignment) {
		t.Fatalf("expected ErrInvalidAssignment, got %v", err)
	}

	// No UPDATE step scripted: a rejected mentor must leave the team untouched.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestAssign_MissingTeamAndPanel(t *testing.T) {
	t.Run("team not found", func(t *testing.T) {
		steps := []*queryStep{
			{
				kind:    kindQuery,
				pattern: regexp.MustCompile("SELECT .* FROM `teams` WHERE team_id = "),
				columns: []string{"team_id", "team_name"},
				rows:    [][]driver.Value{},
			},
		}
		db, state, cleanup := newScriptedGormDB(t, steps)
		defer cleanup()

		svc := NewAssignmentService(db)
		if _, err := svc.Assign(99, 4, 5); !errors.Is(err, ErrTeamNotFound) {
			t.Fatalf("expected ErrTeamNotFound, got %v", err)
		}
		if err := state.verifyComplete(); err != nil {
			t.Fatalf("unexpected remaining steps: %v", err)
		}
	})

	t.Run("panel not found", func(t *testing.T) {
		steps := []*queryStep{
			{
				kind:    kindQuery,
				pattern: regexp.MustCompile("SELECT .* FROM `teams` WHERE team_id = "),
				columns: []string{"team_id", "team_name"},
				rows:    [][]driver.Value{{int64(10), "Team Atlas"}},
			},
			{
				kind:    kindQuery,
				pattern: regexp.MustCompile("SELECT .* FROM `panels` WHERE panel_id = "),
				columns: []string{"panel_id", "name"},
				rows:    [][]driver.Value{},
			},
		}
		db, state, cleanup := newScriptedGormDB(t, steps)
		defer cleanup()

		svc := NewAssignmentService(db)
		if _, err := svc.Assign(10, 99, 5); !errors.Is(err, ErrPanelNotFound) {
			t.Fatalf("expected ErrPanelNotFound, got %v", err)
		}
		if err := state.verifyComplete(); err != nil {
			t.Fatalf("unexpected remaining steps: %v", err)
		}
	})
}
