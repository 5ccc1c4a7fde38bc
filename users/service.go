package users

import (
	"context"

	"github.com/user/devjournal-go/auth"
)

// UserService provides profile reads over the shared account store.
type UserService struct {
	service *auth.AuthService
}

// NewUserService creates a new UserService.
func NewUserService(service *auth.AuthService) *UserService {
	return &UserService{service: service}
}

// GetProfile returns the profile for an already-authenticated account ID.
func (s *UserService) GetProfile(ctx context.Context, accountID int64) (*ProfileResponse, error) {
	account, err := s.service.CurrentAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Avatar:    account.Avatar,
		CreatedAt: account.CreatedAt,
	}, nil
}
