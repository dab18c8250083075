package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"team-evaluation-api/models"
)

// Notifier persists in-app notifications for the user accounts linked to
// teachers. Delivery is best-effort: a failed insert is logged, never
// surfaced to the triggering request.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// NotifyTeachers pushes one notification to every user account linked to
// the given teachers.
func (n *Notifier) NotifyTeachers(teacherIDs []int, teamID int, title, message, notifType string) {
	if len(teacherIDs) == 0 {
		return
	}

	var users []models.User
	if err := n.db.Where("teacher_id IN ? AND delete_at IS NULL", teacherIDs).Find(&users).Error; err != nil {
		log.Printf("Warning: failed to resolve notification recipients: %v", err)
		return
	}

	for _, user := range users {
		notification := models.Notification{
			UserID:          user.UserID,
			Title:           title,
			Message:         message,
			Type:            notifType,
			ReferenceNumber: uuid.NewString(),
			RelatedTeamID:   &teamID,
			CreateAt:        time.Now(),
		}
		if err := n.db.Create(&notification).Error; err != nil {
			log.Printf("Warning: failed to create notification for user %d: %v", user.UserID, err)
		}
	}
}

// AssignmentMessage renders the notification body for a panel assignment.
func AssignmentMessage(teamName, panelName string) string {
	return fmt.Sprintf("You have been assigned to evaluate team %q (panel %s).", teamName, panelName)
}

// MarkSubmissionMessage renders the notification body for a submitted mark.
func MarkSubmissionMessage(teamName, criterionName, termwork string) string {
	return fmt.Sprintf("A mark for %q (%s, %s) has been submitted.", teamName, criterionName, termwork)
}
