package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"team-evaluation-api/config"
	"team-evaluation-api/models"
	"team-evaluation-api/services"

	"github.com/gin-gonic/gin"
)

// GetMarks returns all marks
func GetMarks(c *gin.Context) {
	var marks []models.Mark
	if err := config.DB.Order("create_at DESC").Find(&marks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch marks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"marks": marks,
		"total": len(marks),
	})
}

// GetTeamMarks returns all marks for a team
func GetTeamMarks(c *gin.Context) {
	teamID := c.Param("teamId")

	var marks []models.Mark
	if err := config.DB.Where("team_id = ?", teamID).Find(&marks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch team marks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"marks": marks,
		"total": len(marks),
	})
}

// GetTeacherMarksForTeam returns the marks one teacher gave a team
func GetTeacherMarksForTeam(c *gin.Context) {
	teamID := c.Param("teamId")
	teacherID := c.Param("teacherId")

	var marks []models.Mark
	if err := config.DB.Where("team_id = ? AND teacher_id = ?", teamID, teacherID).Find(&marks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch teacher marks for team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"marks": marks,
		"total": len(marks),
	})
}

// SubmitMark creates or overwrites a mark for one (team, teacher,
// criterion, termwork) tuple
func SubmitMark(c *gin.Context) {
	type SubmitMarkRequest struct {
		TeamID     int      `json:"team_id" binding:"required"`
		TeacherID  int      `json:"teacher_id" binding:"required"`
		CriteriaID string   `json:"criteria_id" binding:"required"`
		Value      *float64 `json:"value" binding:"required"`
		Termwork   string   `json:"termwork" binding:"required"`
	}

	var req SubmitMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	// A teacher account submits marks under its own linked teacher id
	if tokenTeacherID, ok := submitterTeacherID(c); ok && tokenTeacherID != req.TeacherID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Teachers can only submit marks as themselves"})
		return
	}

	svc := services.NewMarkService(config.DB)
	mark, err := svc.Upsert(services.MarkSubmission{
		TeamID:     req.TeamID,
		TeacherID:  req.TeacherID,
		CriteriaID: req.CriteriaID,
		Value:      *req.Value,
		Termwork:   req.Termwork,
	})
	if err != nil {
		var rangeErr *services.ValueRangeError
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		case errors.Is(err, services.ErrNotAssigned):
			c.JSON(http.StatusForbidden, gin.H{"message": "Teacher is not assigned to this team"})
		case errors.Is(err, services.ErrInvalidTermwork),
			errors.Is(err, services.ErrUnknownCriteria):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.As(err, &rangeErr):
			c.JSON(http.StatusBadRequest, gin.H{"message": rangeErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save mark"})
		}
		return
	}

	notifyMarkSubmitted(mark)

	c.JSON(http.StatusOK, gin.H{
		"message": "Mark saved successfully",
		"mark":    mark,
	})
}

// submitterTeacherID returns the teacher id linked to the authenticated
// account, when the account has one.
func submitterTeacherID(c *gin.Context) (int, bool) {
	v, ok := c.Get("teacherID")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// notifyMarkSubmitted alerts the team's mentor that a mark came in. Best
// effort, like the assignment notifications.
func notifyMarkSubmitted(mark *models.Mark) {
	var team models.Team
	if err := config.DB.Where("team_id = ? AND delete_at IS NULL", mark.TeamID).First(&team).Error; err != nil {
		return
	}
	if team.MentorID == nil || *team.MentorID == mark.TeacherID {
		return // mentors are not alerted about their own marks
	}

	criterionName := mark.CriteriaID
	if criterion, ok := config.CriterionByID(mark.CriteriaID); ok {
		criterionName = criterion.Name
	}

	notifier := services.NewNotifier(config.DB)
	notifier.NotifyTeachers(
		[]int{*team.MentorID},
		team.TeamID,
		"Mark submitted",
		services.MarkSubmissionMessage(team.TeamName, criterionName, mark.Termwork),
		"info",
	)
}

// GetTeamAverages returns per-criterion averages for a team, optionally
// filtered by termwork, plus the team total (mean of the criterion means)
func GetTeamAverages(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team id"})
		return
	}
	termwork := c.Query("termwork")

	svc := services.NewMarkService(config.DB)
	averages, overall, err := svc.TeamAverages(teamID, termwork)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTermwork) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to calculate average marks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"averages": averages,
		"overall":  overall,
	})
}
