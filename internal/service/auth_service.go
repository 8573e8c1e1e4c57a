package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learntrack_backend/internal/config"
	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Cfg: cfg}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Age      *int   `json:"age"`
}

func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Age:      req.Age,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token. The same error is
// returned for an unknown email and a wrong password.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GoogleLogin signs in a Google-verified identity: an account with the
// Google id logs straight in, an account with the same email gets the id
// linked, otherwise a new passwordless account is created.
func (s *AuthService) GoogleLogin(googleID, email, name string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByGoogleID(googleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.UserRepo.FindByEmail(email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = &model.User{Name: name, Email: email, GoogleID: &googleID}
			if err := s.UserRepo.Create(user); err != nil {
				return nil, "", err
			}
		} else if err != nil {
			return nil, "", err
		} else {
			user.GoogleID = &googleID
			if err := s.UserRepo.Update(user); err != nil {
				return nil, "", err
			}
		}
	} else if err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
