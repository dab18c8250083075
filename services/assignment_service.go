package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"team-evaluation-api/models"
)

// AssignmentService binds a team to an evaluation panel: the chosen mentor
// must sit on the panel, and the panel's other two teachers become the
// team's reviewers.
type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// Assignment is the persisted outcome of a successful panel assignment.
type Assignment struct {
	TeamID      int `json:"team_id"`
	PanelID     int `json:"panel_id"`
	MentorID    int `json:"mentor_id"`
	Reviewer1ID int `json:"reviewer1_id"`
	Reviewer2ID int `json:"reviewer2_id"`
}

// DeriveReviewers picks the two reviewers for a mentor out of a panel's
// teacher list. Reviewer order follows the panel's stored seat order:
// first remaining teacher = reviewer1, second = reviewer2.
func DeriveReviewers(panelTeacherIDs []int, mentorID int) (int, int, error) {
	if len(panelTeacherIDs) != models.PanelSize {
		return 0, 0, ErrMalformedPanel
	}

	mentorFound := false
	remaining := make([]int, 0, models.PanelSize-1)
	for _, id := range panelTeacherIDs {
		if id == mentorID {
			mentorFound = true
			continue
		}
		remaining = append(remaining, id)
	}

	if !mentorFound {
		return 0, 0, ErrInvalidAssignment
	}
	if len(remaining) != models.PanelSize-1 {
		// Duplicate seats collapse the remainder below two.
		return 0, 0, ErrMalformedPanel
	}

	return remaining[0], remaining[1], nil
}

// Assign validates the (team, panel, mentor) triple and persists panel,
// mentor and both derived reviewers onto the team in one update. There is
// no rollback path: a failure after validation means the caller retries
// the whole assignment.
func (s *AssignmentService) Assign(teamID, panelID, mentorID int) (*Assignment, error) {
	var team models.Team
	if err := s.db.Where("team_id = ? AND delete_at IS NULL", teamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	var panel models.Panel
	if err := s.db.Where("panel_id = ? AND delete_at IS NULL", panelID).First(&panel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPanelNotFound
		}
		return nil, fmt.Errorf("failed to load panel: %w", err)
	}

	var seats []models.PanelTeacher
	if err := s.db.Where("panel_id = ?", panelID).Order("position ASC").Find(&seats).Error; err != nil {
		return nil, fmt.Errorf("failed to load panel teachers: %w", err)
	}

	teacherIDs := make([]int, 0, len(seats))
	for _, seat := range seats {
		teacherIDs = append(teacherIDs, seat.TeacherID)
	}

	reviewer1, reviewer2, err := DeriveReviewers(teacherIDs, mentorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"panel_id":     panelID,
		"mentor_id":    mentorID,
		"reviewer1_id": reviewer1,
		"reviewer2_id": reviewer2,
		"update_at":    now,
	}
	if err := s.db.Model(&models.Team{}).Where("team_id = ?", teamID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to persist assignment: %w", err)
	}

	return &Assignment{
		TeamID:      teamID,
		PanelID:     panelID,
		MentorID:    mentorID,
		Reviewer1ID: reviewer1,
		Reviewer2ID: reviewer2,
	}, nil
}
