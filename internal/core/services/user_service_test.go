package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/core/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/platform/config"
	"github.com/ronaldocristover/arisan-backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "arisan-backend-test",
	}
	suite.service = services.NewUserService(cfg, suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, "admin@example.com").Return(user, nil).Once()

	token, got, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(user.UserID, got.UserID)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, _ := utils.HashPassword("correct-horse")
	user := &domain.User{UserID: uuid.NewString(), Email: "admin@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "admin@example.com").Return(user, nil).Once()

	token, got, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(got)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownEmailIndistinguishable() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" &&
			u.PasswordHash != "supersecret1" &&
			utils.CheckPasswordHash("supersecret1", u.PasswordHash) &&
			u.Role == domain.RoleUser
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "supersecret1",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{
		Email:    "dupe@example.com",
		Password: "supersecret1",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
