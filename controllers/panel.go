package controllers

import (
	"fmt"
	"net/http"
	"time"

	"team-evaluation-api/config"
	"team-evaluation-api/models"
	"team-evaluation-api/utils"

	"github.com/gin-gonic/gin"
)

type PanelRequest struct {
	Name       string `json:"name" binding:"required"`
	TeacherIDs []int  `json:"teacher_ids" binding:"required"`
}

// validatePanelTeachers rejects wrong cardinality, duplicates, and ids that
// do not resolve to an existing teacher.
func validatePanelTeachers(teacherIDs []int) (string, bool) {
	if len(teacherIDs) != models.PanelSize {
		return fmt.Sprintf("Exactly %d teacher IDs are required", models.PanelSize), false
	}

	seen := make(map[int]bool, len(teacherIDs))
	for _, id := range teacherIDs {
		if seen[id] {
			return "Panel teachers must be distinct", false
		}
		seen[id] = true
	}

	var count int64
	config.DB.Model(&models.Teacher{}).
		Where("teacher_id IN ? AND delete_at IS NULL", teacherIDs).
		Count(&count)
	if count != int64(len(teacherIDs)) {
		return "One or more teachers not found", false
	}

	return "", true
}

func replacePanelTeachers(panelID int, teacherIDs []int) error {
	if err := config.DB.Where("panel_id = ?", panelID).Delete(&models.PanelTeacher{}).Error; err != nil {
		return err
	}
	for i, teacherID := range teacherIDs {
		seat := models.PanelTeacher{
			PanelID:   panelID,
			TeacherID: teacherID,
			Position:  i + 1,
		}
		if err := config.DB.Create(&seat).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetPanels returns list of panels with teacher details
func GetPanels(c *gin.Context) {
	var panels []models.Panel
	if err := config.DB.Preload("Members.Teacher").
		Where("delete_at IS NULL").
		Order("create_at DESC").
		Find(&panels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch panels"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"panels": panels,
		"total":  len(panels),
	})
}

// GetPanel returns a single panel
func GetPanel(c *gin.Context) {
	id := c.Param("id")

	var panel models.Panel
	if err := config.DB.Preload("Members.Teacher").
		Where("panel_id = ? AND delete_at IS NULL", id).
		First(&panel).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Panel not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"panel": panel})
}

// CreatePanel creates a panel of exactly three distinct teachers
func CreatePanel(c *gin.Context) {
	var req PanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Panel name and exactly 3 teacher IDs are required"})
		return
	}

	if msg, ok := validatePanelTeachers(req.TeacherIDs); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	now := time.Now()
	panel := models.Panel{
		Name:     utils.SanitizeInput(req.Name),
		CreateAt: &now,
		UpdateAt: &now,
	}

	if err := config.DB.Create(&panel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create panel"})
		return
	}
	if err := replacePanelTeachers(panel.PanelID, req.TeacherIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create panel"})
		return
	}

	config.DB.Preload("Members.Teacher").First(&panel, panel.PanelID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Panel created successfully",
		"panel":   panel,
	})
}

// UpdatePanel renames a panel and replaces its teacher set. Denied while
// teams reference the panel; their mentor/reviewer links would go stale.
func UpdatePanel(c *gin.Context) {
	id := c.Param("id")

	var req PanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Panel name and exactly 3 teacher IDs are required"})
		return
	}

	var panel models.Panel
	if err := config.DB.Where("panel_id = ? AND delete_at IS NULL", id).First(&panel).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Panel not found"})
		return
	}

	if msg, ok := validatePanelTeachers(req.TeacherIDs); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	var teamRefs int64
	config.DB.Model(&models.Team{}).
		Where("panel_id = ? AND delete_at IS NULL", panel.PanelID).
		Count(&teamRefs)
	if teamRefs > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Panel is assigned to a team and cannot be changed"})
		return
	}

	now := time.Now()
	panel.Name = utils.SanitizeInput(req.Name)
	panel.UpdateAt = &now

	if err := config.DB.Save(&panel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update panel"})
		return
	}
	if err := replacePanelTeachers(panel.PanelID, req.TeacherIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update panel"})
		return
	}

	config.DB.Preload("Members.Teacher").First(&panel, panel.PanelID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Panel updated successfully",
		"panel":   panel,
	})
}

// DeletePanel removes a panel unless a team still references it
func DeletePanel(c *gin.Context) {
	id := c.Param("id")

	var panel models.Panel
	if err := config.DB.Where("panel_id = ? AND delete_at IS NULL", id).First(&panel).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Panel not found"})
		return
	}

	var teamRefs int64
	config.DB.Model(&models.Team{}).
		Where("panel_id = ? AND delete_at IS NULL", panel.PanelID).
		Count(&teamRefs)
	if teamRefs > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Panel is assigned to a team and cannot be deleted"})
		return
	}

	if err := config.DB.Where("panel_id = ?", panel.PanelID).Delete(&models.PanelTeacher{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete panel"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&panel).Updates(map[string]interface{}{
		"delete_at": now,
		"update_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete panel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panel deleted successfully"})
}
