package repository

import (
	"learntrack_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindAll() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Order("id").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) FindByID(id uint) (*model.Achievement, error) {
	var achievement model.Achievement
	err := r.DB.First(&achievement, id).Error
	return &achievement, err
}

func (r *AchievementRepository) FindByType(t model.AchievementType) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("type = ?", t).Order("threshold").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) FindUserAchievement(userID, achievementID uint) (*model.UserAchievement, error) {
	var ua model.UserAchievement
	err := r.DB.Where("user_id = ? AND achievement_id = ?", userID, achievementID).First(&ua).Error
	return &ua, err
}

func (r *AchievementRepository) FindUserAchievements(userID uint) ([]model.UserAchievement, error) {
	var rows []model.UserAchievement
	err := r.DB.Where("user_id = ?", userID).Order("unlocked_at desc").Find(&rows).Error
	return rows, err
}

func (r *AchievementRepository) CreateUserAchievement(ua *model.UserAchievement) error {
	return r.DB.Create(ua).Error
}

type PointsRepository struct {
	DB *gorm.DB
}

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{DB: db}
}

func (r *PointsRepository) FindByUser(userID uint) (*model.UserPoints, error) {
	var points model.UserPoints
	err := r.DB.Where("user_id = ?", userID).First(&points).Error
	return &points, err
}

func (r *PointsRepository) Create(points *model.UserPoints) error {
	return r.DB.Create(points).Error
}

func (r *PointsRepository) Update(points *model.UserPoints) error {
	return r.DB.Save(points).Error
}

func (r *PointsRepository) FindTopByPoints(limit int) ([]model.UserPoints, error) {
	var rows []model.UserPoints
	err := r.DB.Order("points desc").Limit(limit).Find(&rows).Error
	return rows, err
}
