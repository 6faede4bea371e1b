package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockAccountService, *MockLimitService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	accountService := NewMockAccountService(ctrl)
	limitService := NewMockLimitService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(userRepo, accountService, limitService, hashService, jwtService)
	defer ctrl.Finish()
	return service, userRepo, accountService, limitService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		prepareMock   func(userRepo *MockUserRepo, accountService *MockAccountService, limitService *MockLimitService, hashService *auth.MockHashServiceInterface)
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:  "Successful registration",
			email: "jane@ezpay.dev",
			prepareMock: func(userRepo *MockUserRepo, accountService *MockAccountService, limitService *MockLimitService, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@ezpay.dev").Return(nil, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				accountService.EXPECT().CreateAccount(context.Background(), 1, "EZBank", true).Return(&domain.Account{ID: 1, UserID: 1, IsPrimary: true}, nil)
				limitService.EXPECT().GetUserLimit(context.Background(), 1).Return(&domain.TransferLimit{UserID: 1}, nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "jane@ezpay.dev",
				Name:         "Jane Doe",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:  "Email already registered",
			email: "jane@ezpay.dev",
			prepareMock: func(userRepo *MockUserRepo, accountService *MockAccountService, limitService *MockLimitService, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@ezpay.dev").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:  "Account provisioning failure propagates",
			email: "jane@ezpay.dev",
			prepareMock: func(userRepo *MockUserRepo, accountService *MockAccountService, limitService *MockLimitService, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@ezpay.dev").Return(nil, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				accountService.EXPECT().CreateAccount(context.Background(), 1, "EZBank", true).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, accountService, limitService, hashService, _ := NewMock(t)
			tt.prepareMock(userRepo, accountService, limitService, hashService)

			user, err := service.Register(context.Background(), tt.email, "Jane Doe", "testpassword")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@ezpay.dev").Return(&domain.User{
					ID:           1,
					Email:        "jane@ezpay.dev",
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@ezpay.dev").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(context.Background(), "jane@ezpay.dev").Return(&domain.User{
					ID:           1,
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, _, hashService, _ := NewMock(t)
			tt.prepareMock(userRepo, hashService)

			user, err := service.Authenticate(context.Background(), "jane@ezpay.dev", "testpassword")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, user.ID)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken(1)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("sign error"))
	_, err = service.GenerateToken(1)
	assert.Error(t, err)
}
