package models

import (
	"time"
)

type Teacher struct {
	TeacherID int        `gorm:"primaryKey;column:teacher_id" json:"teacher_id"`
	Name      string     `gorm:"column:name;unique" json:"name"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Teacher) TableName() string {
	return "teachers"
}
