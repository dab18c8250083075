package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"team-evaluation-api/config"
	"team-evaluation-api/models"
)

// MarkService stores rubric marks and computes per-criterion averages.
// At most one mark exists per (team, teacher, criterion, termwork); a
// resubmission overwrites the value in place.
type MarkService struct {
	db            *gorm.DB
	enforcePolicy bool
}

// NewMarkService reads the submission policy from MARK_POLICY: "enforced"
// (default) requires the submitting teacher to be the team's mentor or one
// of its reviewers, "open" skips the check.
func NewMarkService(db *gorm.DB) *MarkService {
	return &MarkService{
		db:            db,
		enforcePolicy: strings.ToLower(os.Getenv("MARK_POLICY")) != "open",
	}
}

type MarkSubmission struct {
	TeamID     int
	TeacherID  int
	CriteriaID string
	Value      float64
	Termwork   string
}

// Upsert stores a mark as a single conditional write keyed by the unique
// (team, teacher, criterion, termwork) index: concurrent submissions for
// the same tuple resolve to last-write-wins inside the store instead of
// surfacing a duplicate-key error. An update touches only value and
// update_at; mark identity and create_at survive resubmission.
func (s *MarkService) Upsert(sub MarkSubmission) (*models.Mark, error) {
	if !models.IsValidTermwork(sub.Termwork) {
		return nil, ErrInvalidTermwork
	}

	criterion, ok := config.CriterionByID(sub.CriteriaID)
	if !ok {
		return nil, ErrUnknownCriteria
	}
	if sub.Value < 0 || sub.Value > criterion.MaxMarks {
		return nil, &ValueRangeError{CriteriaID: criterion.ID, Max: criterion.MaxMarks}
	}

	var team models.Team
	if err := s.db.Where("team_id = ? AND delete_at IS NULL", sub.TeamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if s.enforcePolicy && !team.HasEvaluator(sub.TeacherID) {
		return nil, ErrNotAssigned
	}

	now := time.Now()
	mark := models.Mark{
		TeamID:     sub.TeamID,
		TeacherID:  sub.TeacherID,
		CriteriaID: sub.CriteriaID,
		Value:      sub.Value,
		Termwork:   sub.Termwork,
		CreateAt:   now,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "team_id"}, {Name: "teacher_id"}, {Name: "criteria_id"}, {Name: "termwork"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":     sub.Value,
			"update_at": now,
		}),
	}).Create(&mark).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save mark: %w", err)
	}

	var stored models.Mark
	if err := s.db.Where(
		"team_id = ? AND teacher_id = ? AND criteria_id = ? AND termwork = ?",
		sub.TeamID, sub.TeacherID, sub.CriteriaID, sub.Termwork,
	).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to reload mark: %w", err)
	}

	return &stored, nil
}

// TeamAverages returns the arithmetic mean of the marks recorded per
// criterion for a team, optionally filtered by termwork, plus the team
// total. Criteria nobody has marked are absent from the map. The total is
// the mean of the per-criterion means — an average of averages, kept for
// compatibility with the observed behavior rather than a mark-weighted sum.
func (s *MarkService) TeamAverages(teamID int, termwork string) (map[string]float64, float64, error) {
	if termwork != "" && !models.IsValidTermwork(termwork) {
		return nil, 0, ErrInvalidTermwork
	}

	type criterionAverage struct {
		CriteriaID string  `gorm:"column:criteria_id"`
		Average    float64 `gorm:"column:average"`
	}

	query := s.db.Model(&models.Mark{}).
		Select("criteria_id, AVG(value) AS average").
		Where("team_id = ?", teamID)
	if termwork != "" {
		query = query.Where("termwork = ?", termwork)
	}

	var rows []criterionAverage
	if err := query.Group("criteria_id").Order("criteria_id ASC").Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate marks: %w", err)
	}

	averages := make(map[string]float64, len(rows))
	sum := 0.0
	for _, row := range rows {
		averages[row.CriteriaID] = row.Average
		sum += row.Average
	}

	overall := 0.0
	if len(rows) > 0 {
		overall = sum / float64(len(rows))
	}

	return averages, overall, nil
}
