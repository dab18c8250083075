package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"team-evaluation-api/config"
	"team-evaluation-api/models"
	"team-evaluation-api/services"
	"team-evaluation-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// sendMailFunc is swappable in tests.
var sendMailFunc = config.SendMail

// configuredTeamSize returns the required member count per team.
// TEAM_SIZE=0 allows teams of any size.
func configuredTeamSize() int {
	size, err := strconv.Atoi(os.Getenv("TEAM_SIZE"))
	if err != nil {
		return 4 // default: four-member project teams
	}
	return size
}

type TeamMemberRequest struct {
	Name      string `json:"name" binding:"required"`
	SapID     string `json:"sap_id" binding:"required"`
	ClassName string `json:"class_name" binding:"required"`
}

// validateMemberList checks the replacement member list before anything is
// written: exact configured size, valid SAP ids.
func validateMemberList(members []TeamMemberRequest) (string, bool) {
	if size := configuredTeamSize(); size > 0 && len(members) != size {
		return fmt.Sprintf("A team must have exactly %d members", size), false
	}
	for _, m := range members {
		if !utils.ValidateSapID(m.SapID) {
			return fmt.Sprintf("Invalid SAP ID %q", m.SapID), false
		}
	}
	return "", true
}

func teamPreload() *gorm.DB {
	return config.DB.Preload("Members").Preload("Panel.Members.Teacher").
		Preload("Mentor").Preload("Reviewer1").Preload("Reviewer2")
}

// GetTeams returns list of teams with panel and evaluator details
func GetTeams(c *gin.Context) {
	var teams []models.Team
	if err := teamPreload().
		Where("delete_at IS NULL").
		Order("create_at DESC").
		Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teams": teams,
		"total": len(teams),
	})
}

// GetTeam returns single team by ID
func GetTeam(c *gin.Context) {
	id := c.Param("id")

	var team models.Team
	if err := teamPreload().
		Where("team_id = ? AND delete_at IS NULL", id).
		First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// CreateTeam registers a new project team
func CreateTeam(c *gin.Context) {
	type CreateTeamRequest struct {
		TeamName string              `json:"team_name" binding:"required"`
		Members  []TeamMemberRequest `json:"members" binding:"required,dive"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if msg, ok := validateMemberList(req.Members); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	now := time.Now()
	team := models.Team{
		TeamName: utils.SanitizeInput(req.TeamName),
		CreateAt: &now,
		UpdateAt: &now,
	}
	for i, m := range req.Members {
		team.Members = append(team.Members, models.TeamMember{
			Name:        utils.SanitizeInput(m.Name),
			SapID:       utils.SanitizeInput(m.SapID),
			ClassName:   utils.SanitizeInput(m.ClassName),
			MemberOrder: i + 1,
		})
	}

	if err := config.DB.Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create team"})
		return
	}

	// Load relations
	teamPreload().First(&team, team.TeamID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team registered successfully",
		"team":    team,
	})
}

// UpdateTeam updates a team's name and member list
func UpdateTeam(c *gin.Context) {
	id := c.Param("id")

	type UpdateTeamRequest struct {
		TeamName string              `json:"team_name"`
		Members  []TeamMemberRequest `json:"members" binding:"omitempty,dive"`
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var team models.Team
	if err := config.DB.Where("team_id = ? AND delete_at IS NULL", id).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	// Validate the replacement member list before the first write so a bad
	// request leaves the team untouched
	if len(req.Members) > 0 {
		if msg, ok := validateMemberList(req.Members); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
	}

	now := time.Now()
	if req.TeamName != "" {
		team.TeamName = utils.SanitizeInput(req.TeamName)
	}
	team.UpdateAt = &now

	if err := config.DB.Save(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update team"})
		return
	}

	// Replacing the member list is all-or-nothing
	if len(req.Members) > 0 {
		if err := config.DB.Where("team_id = ?", team.TeamID).Delete(&models.TeamMember{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update team members"})
			return
		}
		for i, m := range req.Members {
			member := models.TeamMember{
				TeamID:      team.TeamID,
				Name:        utils.SanitizeInput(m.Name),
				SapID:       utils.SanitizeInput(m.SapID),
				ClassName:   utils.SanitizeInput(m.ClassName),
				MemberOrder: i + 1,
			}
			if err := config.DB.Create(&member).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update team members"})
				return
			}
		}
	}

	teamPreload().First(&team, team.TeamID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Team updated successfully",
		"team":    team,
	})
}

// DeleteTeam removes a team, its members and its marks
func DeleteTeam(c *gin.Context) {
	id := c.Param("id")

	var team models.Team
	if err := config.DB.Where("team_id = ? AND delete_at IS NULL", id).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	// Marks and members are owned by the team and go with it
	if err := config.DB.Where("team_id = ?", team.TeamID).Delete(&models.Mark{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete team marks"})
		return
	}
	if err := config.DB.Where("team_id = ?", team.TeamID).Delete(&models.TeamMember{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete team members"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&team).Updates(map[string]interface{}{
		"delete_at": now,
		"update_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// AssignPanel assigns a panel and mentor to a team; the panel's other two
// teachers become the reviewers
func AssignPanel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team id"})
		return
	}

	type AssignRequest struct {
		PanelID  int `json:"panel_id" binding:"required"`
		MentorID int `json:"mentor_id" binding:"required"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Panel ID and mentor ID are required"})
		return
	}

	svc := services.NewAssignmentService(config.DB)
	assignment, err := svc.Assign(id, req.PanelID, req.MentorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		case errors.Is(err, services.ErrPanelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Panel not found"})
		case errors.Is(err, services.ErrInvalidAssignment):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Selected mentor must be part of the panel"})
		case errors.Is(err, services.ErrMalformedPanel):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Panel must have exactly 3 teachers"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign panel"})
		}
		return
	}

	var team models.Team
	if err := teamPreload().First(&team, assignment.TeamID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reload team"})
		return
	}

	notifyAssignment(team, assignment)

	c.JSON(http.StatusOK, gin.H{
		"message": "Panel assigned successfully",
		"team":    team,
	})
}

// notifyAssignment pushes in-app notifications to all three evaluators and
// emails the mentor. Both are best-effort.
func notifyAssignment(team models.Team, assignment *services.Assignment) {
	panelName := ""
	if team.Panel != nil {
		panelName = team.Panel.Name
	}

	notifier := services.NewNotifier(config.DB)
	notifier.NotifyTeachers(
		[]int{assignment.MentorID, assignment.Reviewer1ID, assignment.Reviewer2ID},
		team.TeamID,
		"Panel assignment",
		services.AssignmentMessage(team.TeamName, panelName),
		"info",
	)

	var mentorUser models.User
	if err := config.DB.Where("teacher_id = ? AND delete_at IS NULL", assignment.MentorID).
		First(&mentorUser).Error; err != nil {
		return // mentor has no account; nothing to email
	}

	go func() {
		body := fmt.Sprintf(
			"<p>You are now the mentor of team <b>%s</b> (panel %s).</p>",
			team.TeamName, panelName,
		)
		if err := sendMailFunc([]string{mentorUser.Email}, "New team assignment", body); err != nil {
			log.Printf("Warning: failed to send assignment email: %v", err)
		}
	}()
}
