package auth

import (
	"strings"

	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
	"github.com/mobileshop/pos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase single-admin login. There is no registration endpoint: the
// admin row is created by cmd/seed.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies email/password, generates a JWT and returns token + user.
// Unknown email and wrong password both come back as ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

// CurrentUser loads the authenticated user by the ID in the token.
func (uc *AuthUseCase) CurrentUser(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
