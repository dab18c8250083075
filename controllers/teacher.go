package controllers

import (
	"net/http"
	"time"

	"team-evaluation-api/config"
	"team-evaluation-api/models"
	"team-evaluation-api/utils"

	"github.com/gin-gonic/gin"
)

// GetTeachers returns list of teachers
func GetTeachers(c *gin.Context) {
	var teachers []models.Teacher
	if err := config.DB.Where("delete_at IS NULL").Order("name ASC").Find(&teachers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch teachers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teachers": teachers,
		"total":    len(teachers),
	})
}

// GetTeacher returns a single teacher with panel memberships
func GetTeacher(c *gin.Context) {
	id := c.Param("id")

	var teacher models.Teacher
	if err := config.DB.Where("teacher_id = ? AND delete_at IS NULL", id).First(&teacher).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Teacher not found"})
		return
	}

	// Panel memberships are derived by query, not denormalized
	var seats []models.PanelTeacher
	config.DB.Joins("JOIN panels ON panels.panel_id = panel_teachers.panel_id AND panels.delete_at IS NULL").
		Where("panel_teachers.teacher_id = ?", teacher.TeacherID).
		Find(&seats)

	panelIDs := make([]int, 0, len(seats))
	for _, seat := range seats {
		panelIDs = append(panelIDs, seat.PanelID)
	}

	c.JSON(http.StatusOK, gin.H{
		"teacher":   teacher,
		"panel_ids": panelIDs,
	})
}

// CreateTeacher creates a new teacher
func CreateTeacher(c *gin.Context) {
	type CreateTeacherRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}

	name := utils.SanitizeInput(req.Name)

	var existing models.Teacher
	if err := config.DB.Where("name = ? AND delete_at IS NULL", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "A teacher with this name already exists"})
		return
	}

	now := time.Now()
	teacher := models.Teacher{
		Name:     name,
		CreateAt: &now,
		UpdateAt: &now,
	}

	if err := config.DB.Create(&teacher).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create teacher"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Teacher created successfully",
		"teacher": teacher,
	})
}

// UpdateTeacher renames a teacher
func UpdateTeacher(c *gin.Context) {
	id := c.Param("id")

	type UpdateTeacherRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}

	var teacher models.Teacher
	if err := config.DB.Where("teacher_id = ? AND delete_at IS NULL", id).First(&teacher).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Teacher not found"})
		return
	}

	now := time.Now()
	teacher.Name = utils.SanitizeInput(req.Name)
	teacher.UpdateAt = &now

	if err := config.DB.Save(&teacher).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update teacher"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Teacher updated successfully",
		"teacher": teacher,
	})
}

// DeleteTeacher removes a teacher unless a panel or team still references
// them
func DeleteTeacher(c *gin.Context) {
	id := c.Param("id")

	var teacher models.Teacher
	if err := config.DB.Where("teacher_id = ? AND delete_at IS NULL", id).First(&teacher).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Teacher not found"})
		return
	}

	var panelRefs int64
	config.DB.Model(&models.PanelTeacher{}).
		Joins("JOIN panels ON panels.panel_id = panel_teachers.panel_id AND panels.delete_at IS NULL").
		Where("panel_teachers.teacher_id = ?", teacher.TeacherID).
		Count(&panelRefs)
	if panelRefs > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Teacher is a member of a panel and cannot be deleted"})
		return
	}

	var teamRefs int64
	config.DB.Model(&models.Team{}).
		Where("delete_at IS NULL AND (mentor_id = ? OR reviewer1_id = ? OR reviewer2_id = ?)",
			teacher.TeacherID, teacher.TeacherID, teacher.TeacherID).
		Count(&teamRefs)
	if teamRefs > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Teacher is assigned to a team and cannot be deleted"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&teacher).Updates(map[string]interface{}{
		"delete_at": now,
		"update_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete teacher"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted successfully"})
}
