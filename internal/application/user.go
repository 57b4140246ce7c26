package app

import (
	"context"
	"math"

	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateState(ctx, userID, state); err != nil {
		return nil, err
	}
	user.SetState(state)

	return user, nil
}

// BeginNavigate переключает пользователя в режим навигации и ждёт фото
func (s *UserService) BeginNavigate(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) {
		u.SetMode(entity.ModeNavigate, "")
		u.SetState(entity.StateAwaitingPhoto)
	})
}

// BeginDetect переключает пользователя в режим поиска объекта и ждёт фото
func (s *UserService) BeginDetect(ctx context.Context, userID, chatID int64, objectName string) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) {
		u.SetMode(entity.ModeDetect, objectName)
		u.SetState(entity.StateAwaitingPhoto)
	})
}

// SetFocalLength сохраняет фокусное расстояние камеры пользователя
func (s *UserService) SetFocalLength(ctx context.Context, userID, chatID int64, focalLengthPx float64) (*entity.User, error) {
	if !(focalLengthPx > 0) || math.IsInf(focalLengthPx, 0) {
		return nil, ErrInvalidFocalLength
	}
	return s.update(ctx, userID, chatID, func(u *entity.User) {
		u.FocalLengthPx = focalLengthPx
	})
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

func (s *UserService) update(ctx context.Context, userID, chatID int64, apply func(*entity.User)) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	apply(user)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
