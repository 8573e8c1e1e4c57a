package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"learntrack_backend/internal/model"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  StorageProvider
}

func NewUserService(userRepo *repository.UserRepository, storage StorageProvider) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

type UpdateProfileRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
	Bio  *string `json:"bio"`
}

// UpdateProfile applies only the fields present in the request.
func (s *UserService) UpdateProfile(id uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar stores the uploaded image and records its URL on the profile.
func (s *UserService) UploadAvatar(ctx context.Context, id uint, header *multipart.FileHeader) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := fmt.Sprintf("avatar_%d_%d%s", id, time.Now().UnixNano(), filepath.Ext(header.Filename))
	url, err := s.Storage.Save(ctx, name, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		return nil, err
	}

	user.ProfilePicURL = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
