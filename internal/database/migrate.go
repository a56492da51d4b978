package database

import (
	eventRepo "github.com/hukuitappei/voicetask/internal/repository/event"
	taskRepo "github.com/hukuitappei/voicetask/internal/repository/task"
	"gorm.io/gorm"
)

func MigrateDB(db *gorm.DB) {
	db.AutoMigrate(
		&taskRepo.TaskEntity{},
		&eventRepo.EventEntity{},
	)
}
