package service

import (
	"context"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser registers the user on first contact.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	exists, err := s.repository.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.repository.Save(ctx, entities.NewUser(userID, chatID))
	return err
}
