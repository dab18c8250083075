// Command seed migrates the schema and provisions the admin account plus
// optional demo teachers. Run it once against a fresh database:
//
//	ADMIN_EMAIL=admin@college.edu ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"log"
	"os"
	"time"

	"team-evaluation-api/config"
	"team-evaluation-api/controllers"
	"team-evaluation-api/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Teacher{},
		&models.Panel{},
		&models.PanelTeacher{},
		&models.Team{},
		&models.TeamMember{},
		&models.Mark{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Schema migrated")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	seedUser(adminEmail, adminPassword, models.RoleAdmin, nil)

	if os.Getenv("SEED_DEMO") == "1" {
		seedDemoTeachers()
	}
}

func seedUser(email, password, role string, teacherID *int) {
	var existing models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", email).First(&existing).Error; err == nil {
		log.Printf("User %s already exists, skipping", email)
		return
	}

	hashed, err := controllers.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()
	user := models.User{
		Email:     email,
		Password:  hashed,
		Role:      role,
		TeacherID: teacherID,
		CreateAt:  &now,
		UpdateAt:  &now,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}
	log.Printf("Created %s account %s", role, email)
}

func seedDemoTeachers() {
	demo := []struct {
		name  string
		email string
	}{
		{"Dr. Lisa Brown", "teacher1@college.edu"},
		{"Prof. Michael Clark", "teacher2@college.edu"},
		{"Dr. Sarah Wilson", "teacher3@college.edu"},
		{"Prof. David Miller", "teacher4@college.edu"},
		{"Dr. Jessica Taylor", "teacher5@college.edu"},
	}

	for _, d := range demo {
		var teacher models.Teacher
		err := config.DB.Where("name = ? AND delete_at IS NULL", d.name).First(&teacher).Error
		if err != nil {
			now := time.Now()
			teacher = models.Teacher{Name: d.name, CreateAt: &now, UpdateAt: &now}
			if err := config.DB.Create(&teacher).Error; err != nil {
				log.Fatal("Failed to create teacher:", err)
			}
			log.Printf("Created teacher %s", d.name)
		}
		seedUser(d.email, "changeme", models.RoleTeacher, &teacher.TeacherID)
	}
}
