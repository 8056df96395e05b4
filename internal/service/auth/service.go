package auth

import (
	"context"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/auth"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/security"
)

type Service struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
	tokens *auth.TokenMaker
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher, tokens *auth.TokenMaker) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

// Login checks credentials server-side and issues a signed session token
// carrying the user's role and identity.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Unauthorized("invalid username or password")
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.Unauthorized("invalid username or password")
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.Role, user.Name)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.LoginResponse{User: user, Token: token}, nil
}

// ValidateToken parses a bearer token into its claims.
func (s *Service) ValidateToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return claims, nil
}
