package models

import (
	"time"
)

// Termwork phases. Each criterion is scored independently per phase.
const (
	Termwork1 = "termwork1"
	Termwork2 = "termwork2"
)

// Mark is one evaluator's score for one team, one criterion, one termwork
// phase. The unique index makes resubmission an update instead of a
// duplicate row; marks are hard rows (no soft delete) so the index keeps
// enforcing the tuple.
type Mark struct {
	MarkID     int        `gorm:"primaryKey;column:mark_id" json:"mark_id"`
	TeamID     int        `gorm:"column:team_id;uniqueIndex:uniq_mark_tuple" json:"team_id"`
	TeacherID  int        `gorm:"column:teacher_id;uniqueIndex:uniq_mark_tuple" json:"teacher_id"`
	CriteriaID string     `gorm:"column:criteria_id;size:64;uniqueIndex:uniq_mark_tuple" json:"criteria_id"`
	Value      float64    `gorm:"column:value" json:"value"`
	Termwork   string     `gorm:"column:termwork;size:16;uniqueIndex:uniq_mark_tuple" json:"termwork"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (Mark) TableName() string {
	return "marks"
}

func IsValidTermwork(termwork string) bool {
	return termwork == Termwork1 || termwork == Termwork2
}
