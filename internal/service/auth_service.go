package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"restobot-be/internal/dto"
	"restobot-be/internal/entity"
	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already registered")

// IAuthService serves both the REST endpoints and the conversational auth
// flow. The bot.Authenticator methods translate domain failures into nil
// results so the dialog re-prompts instead of erroring.
type IAuthService interface {
	bot.Authenticator
	LoginREST(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RegisterREST(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  []byte
	tokenTTL   time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   24 * time.Hour,
	}
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*bot.AuthResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &bot.AuthResult{UserID: user.Id, Email: user.Email, Name: user.Name, Token: token}, nil
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*bot.AuthResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &bot.AuthResult{UserID: user.Id, Email: user.Email, Name: user.Name, Token: token}, nil
}

func (s *authService) LoginREST(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	result, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrInvalidCredentials
	}
	return toAuthResponse(result), nil
}

func (s *authService) RegisterREST(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	result, err := s.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrEmailTaken
	}
	return toAuthResponse(result), nil
}

func (s *authService) generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.Id,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func toAuthResponse(r *bot.AuthResult) *dto.AuthResponse {
	return &dto.AuthResponse{
		UserID: r.UserID,
		Name:   r.Name,
		Email:  r.Email,
		Token:  r.Token,
	}
}
