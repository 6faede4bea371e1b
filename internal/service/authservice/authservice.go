package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/pkg/auth"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type AccountService interface {
	CreateAccount(ctx context.Context, userID int, bankName string, isPrimary bool) (*domain.Account, error)
}

type LimitService interface {
	GetUserLimit(ctx context.Context, userID int) (*domain.TransferLimit, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const defaultBankName = "EZBank"

type Service struct {
	userRepo       UserRepo
	accountService AccountService
	limitService   LimitService
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
}

func New(userRepo UserRepo, accountService AccountService, limitService LimitService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:       userRepo,
		accountService: accountService,
		limitService:   limitService,
		hashService:    hashService,
		jwtService:     jwtService,
	}
}

// Register creates the user together with a primary account and the default
// transfer limit, so a fresh user can send and receive right away.
func (s *Service) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, email: ", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if _, err = s.accountService.CreateAccount(ctx, newUser.ID, defaultBankName, true); err != nil {
		zap.L().Error("can't create primary account: ", zap.Error(err))
		return nil, err
	}
	if _, err = s.limitService.GetUserLimit(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create default transfer limit: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
