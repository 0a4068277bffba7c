package database

import (
	"fmt"
	"log"
	"mahad_backend/internal/config"
	"mahad_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate creates or updates the schema. Shared with the package tests,
// which run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Building{},
		&model.Floor{},
		&model.StudyGroup{},
		&model.Resident{},
		&model.Supervisor{},
		&model.SupervisorAssistant{},
		&model.MemorizationTarget{},
		&model.SubTarget{},
		&model.TahfidzGrade{},
		&model.QuizAssignment{},
		&model.QuizQuestion{},
		&model.QuizAnswer{},
	)
}
