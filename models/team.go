package models

import (
	"time"
)

type Team struct {
	TeamID      int        `gorm:"primaryKey;column:team_id" json:"team_id"`
	TeamName    string     `gorm:"column:team_name" json:"team_name"`
	PanelID     *int       `gorm:"column:panel_id" json:"panel_id,omitempty"`
	MentorID    *int       `gorm:"column:mentor_id" json:"mentor_id,omitempty"`
	Reviewer1ID *int       `gorm:"column:reviewer1_id" json:"reviewer1_id,omitempty"`
	Reviewer2ID *int       `gorm:"column:reviewer2_id" json:"reviewer2_id,omitempty"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations. Panel and teacher links are weak references; rows are
	// guarded against deletion while referenced rather than cascaded.
	Members   []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Panel     *Panel       `gorm:"foreignKey:PanelID" json:"panel,omitempty"`
	Mentor    *Teacher     `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Reviewer1 *Teacher     `gorm:"foreignKey:Reviewer1ID" json:"reviewer1,omitempty"`
	Reviewer2 *Teacher     `gorm:"foreignKey:Reviewer2ID" json:"reviewer2,omitempty"`
}

// TeamMember is owned exclusively by its team and deleted with it.
type TeamMember struct {
	MemberID    int    `gorm:"primaryKey;column:member_id" json:"member_id"`
	TeamID      int    `gorm:"column:team_id;index" json:"team_id"`
	Name        string `gorm:"column:name" json:"name"`
	SapID       string `gorm:"column:sap_id" json:"sap_id"`
	ClassName   string `gorm:"column:class_name" json:"class_name"`
	MemberOrder int    `gorm:"column:member_order" json:"member_order"`
}

func (Team) TableName() string {
	return "teams"
}

func (TeamMember) TableName() string {
	return "team_members"
}

// Evaluators returns the ids of the teachers entitled to mark this team.
func (t *Team) Evaluators() []int {
	var ids []int
	for _, ref := range []*int{t.MentorID, t.Reviewer1ID, t.Reviewer2ID} {
		if ref != nil {
			ids = append(ids, *ref)
		}
	}
	return ids
}

// HasEvaluator reports whether teacherID is the team's mentor or one of
// its reviewers.
func (t *Team) HasEvaluator(teacherID int) bool {
	for _, id := range t.Evaluators() {
		if id == teacherID {
			return true
		}
	}
	return false
}
