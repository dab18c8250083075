package models

import (
	"time"
)

// PanelSize is the number of teachers every panel must have: one mentor
// plus two reviewers per evaluated team.
const PanelSize = 3

type Panel struct {
	PanelID  int        `gorm:"primaryKey;column:panel_id" json:"panel_id"`
	Name     string     `gorm:"column:name" json:"name"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Members []PanelTeacher `gorm:"foreignKey:PanelID" json:"members,omitempty"`
}

// PanelTeacher is one seat on a panel. Position (1..PanelSize) preserves
// the order teachers were listed at panel creation; reviewer derivation
// depends on it.
type PanelTeacher struct {
	PanelTeacherID int `gorm:"primaryKey;column:panel_teacher_id" json:"panel_teacher_id"`
	PanelID        int `gorm:"column:panel_id;index" json:"panel_id"`
	TeacherID      int `gorm:"column:teacher_id" json:"teacher_id"`
	Position       int `gorm:"column:position" json:"position"`

	// Relations
	Teacher Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (Panel) TableName() string {
	return "panels"
}

func (PanelTeacher) TableName() string {
	return "panel_teachers"
}

// TeacherIDs returns the panel's teacher ids in stored seat order.
func (p *Panel) TeacherIDs() []int {
	ids := make([]int, 0, len(p.Members))
	for _, m := range p.Members {
		ids = append(ids, m.TeacherID)
	}
	return ids
}
