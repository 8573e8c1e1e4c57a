package database

import (
	"fmt"
	"log"

	"learntrack_backend/internal/config"
	"learntrack_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Release deployments migrate via --migrate to keep startup fast and
	// schema changes deliberate.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")

		if err := Seed(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Topic{},
		&model.Resource{},
		&model.CommunityNote{},
		&model.NoteVote{},
		&model.UserProgress{},
		&model.UserStreak{},
		&model.PomodoroSession{},
		&model.Task{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.UserQuizAttempt{},
		&model.UserQuizAnswer{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.UserPoints{},
	)
}
