package services_test

import (
	"context"
	"testing"

	"github.com/bengkelku/workshop_management_app/internal/apperrors"
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/core/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo  *MockSessionRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.SessionSvcFacade
	ctx              context.Context
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockSessionRepo = new(MockSessionRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.service = services.NewSessionService(s.mockSessionRepo, s.mockCustomerRepo)
	s.ctx = context.Background()
}

func (s *SessionServiceTestSuite) TestCreateSession() {
	req := dto.CreateSessionRequest{SessionName: "Servis Rutin", CustomerID: "cust-1"}

	customer := &domain.Customer{CustomerID: "cust-1", WorkshopID: testWorkshopID}
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-1", testWorkshopID).Return(customer, nil).Once()
	s.mockSessionRepo.On("SaveSession", s.ctx, mock.AnythingOfType("domain.ServiceSession")).Return(nil).Once()

	session, err := s.service.CreateSession(s.ctx, testWorkshopID, req)

	s.Require().NoError(err)
	s.NotEmpty(session.SessionID)
	s.Equal(testWorkshopID, session.WorkshopID)
	s.False(session.SessionDate.IsZero())
}

func (s *SessionServiceTestSuite) TestCreateSession_CustomerNotInScope() {
	req := dto.CreateSessionRequest{SessionName: "Servis Rutin", CustomerID: "cust-other-tenant"}

	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-other-tenant", testWorkshopID).
		Return(nil, apperrors.ErrNotFound).Once()

	session, err := s.service.CreateSession(s.ctx, testWorkshopID, req)

	s.Require().Error(err)
	s.Nil(session)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockSessionRepo.AssertNotCalled(s.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestListSessionsByCustomer() {
	sessions := []domain.ServiceSession{{SessionID: "sess-2"}, {SessionID: "sess-1"}}
	s.mockSessionRepo.On("FindSessionsByCustomer", s.ctx, "cust-1", testWorkshopID).Return(sessions, nil).Once()

	got, err := s.service.ListSessionsByCustomer(s.ctx, "cust-1", testWorkshopID)

	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal("sess-2", got[0].SessionID)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
