package services_test

import (
	"context"
	"testing"

	"github.com/bengkelku/workshop_management_app/internal/apperrors"
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/core/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/bengkelku/workshop_management_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindOwnerByWorkshopID(ctx context.Context, workshopID string) (*domain.User, error) {
	args := m.Called(ctx, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestRegisterUser_OwnerSuccess() {
	req := dto.RegisterRequest{
		Username:     "budi",
		Password:     "rahasia123",
		WorkshopName: "Bengkel Budi Motor",
	}

	s.mockRepo.On("FindUserByUsername", s.ctx, "budi").Return(nil, apperrors.ErrNotFound).Once()
	var savedUser domain.User
	s.mockRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			savedUser = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal(domain.RoleOwner, user.Role)
	s.Len(user.WorkshopID, 18)
	s.Equal("Bengkel Budi Motor", user.WorkshopName)
	s.NotEqual("rahasia123", savedUser.PasswordHash)
	s.True(utils.CheckPasswordHash("rahasia123", savedUser.PasswordHash))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	req := dto.RegisterRequest{Username: "budi", Password: "rahasia123"}

	existing := &domain.User{Username: "budi"}
	s.mockRepo.On("FindUserByUsername", s.ctx, "budi").Return(existing, nil).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestRegisterUser_UnknownRole() {
	req := dto.RegisterRequest{Username: "budi", Password: "rahasia123", Role: "manager"}

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestRegisterUser_EmployeeInheritsWorkshopName() {
	req := dto.RegisterRequest{
		Username:   "agus",
		Password:   "rahasia123",
		Role:       "employee",
		WorkshopID: "ABCDEF123456789ABC",
	}

	owner := &domain.User{
		Username:     "budi",
		Role:         domain.RoleOwner,
		WorkshopID:   "ABCDEF123456789ABC",
		WorkshopName: "Bengkel Budi Motor",
	}
	s.mockRepo.On("FindUserByUsername", s.ctx, "agus").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindOwnerByWorkshopID", s.ctx, "ABCDEF123456789ABC").Return(owner, nil).Once()
	s.mockRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(domain.RoleEmployee, user.Role)
	s.Equal("ABCDEF123456789ABC", user.WorkshopID)
	s.Equal("Bengkel Budi Motor", user.WorkshopName)
}

func (s *UserServiceTestSuite) TestRegisterUser_EmployeeMissingWorkshopID() {
	req := dto.RegisterRequest{Username: "agus", Password: "rahasia123", Role: "employee"}

	s.mockRepo.On("FindUserByUsername", s.ctx, "agus").Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestRegisterUser_EmployeeUnknownWorkshop() {
	req := dto.RegisterRequest{
		Username:   "agus",
		Password:   "rahasia123",
		Role:       "employee",
		WorkshopID: "DOESNOTEXIST123456",
	}

	s.mockRepo.On("FindUserByUsername", s.ctx, "agus").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindOwnerByWorkshopID", s.ctx, "DOESNOTEXIST123456").Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.RegisterUser(s.ctx, req)

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	hash, err := utils.HashPassword("rahasia123")
	s.Require().NoError(err)

	stored := &domain.User{Username: "budi", PasswordHash: hash}
	s.mockRepo.On("FindUserByUsername", s.ctx, "budi").Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "budi", "rahasia123")

	s.Require().NoError(err)
	s.Equal("budi", user.Username)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("rahasia123")
	s.Require().NoError(err)

	stored := &domain.User{Username: "budi", PasswordHash: hash}
	s.mockRepo.On("FindUserByUsername", s.ctx, "budi").Return(stored, nil).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "budi", "salah")

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	s.mockRepo.On("FindUserByUsername", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.AuthenticateUser(s.ctx, "ghost", "whatever")

	s.Require().Error(err)
	s.Nil(user)
	// Same error as a wrong password, so the caller cannot tell them apart.
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
