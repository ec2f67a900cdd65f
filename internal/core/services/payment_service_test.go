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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockCustomerRepo *MockCustomerRepository
	mockSessionRepo  *MockSessionRepository
	service          portssvc.PaymentSvcFacade
	ctx              context.Context
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockPaymentRepo = new(MockPaymentRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.mockSessionRepo = new(MockSessionRepository)
	s.service = services.NewPaymentService(s.mockPaymentRepo, s.mockCustomerRepo, s.mockSessionRepo)
	s.ctx = context.Background()
}

func (s *PaymentServiceTestSuite) TestCreatePayment_CustomerLevel() {
	req := dto.CreatePaymentRequest{Amount: money(100000), CustomerID: "cust-1"}

	customer := &domain.Customer{CustomerID: "cust-1", WorkshopID: testWorkshopID}
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-1", testWorkshopID).Return(customer, nil).Once()
	s.mockPaymentRepo.On("SavePayment", s.ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()

	payment, err := s.service.CreatePayment(s.ctx, testWorkshopID, req)

	s.Require().NoError(err)
	s.NotEmpty(payment.PaymentID)
	s.Nil(payment.SessionID)
	// No session lookup when the payment settles the customer directly.
	s.mockSessionRepo.AssertNotCalled(s.T(), "FindSessionByID", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_SessionLevel() {
	sessionID := "sess-1"
	req := dto.CreatePaymentRequest{Amount: money(100000), CustomerID: "cust-1", SessionID: &sessionID}

	customer := &domain.Customer{CustomerID: "cust-1", WorkshopID: testWorkshopID}
	session := &domain.ServiceSession{SessionID: "sess-1", CustomerID: "cust-1", WorkshopID: testWorkshopID}
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-1", testWorkshopID).Return(customer, nil).Once()
	s.mockSessionRepo.On("FindSessionByID", s.ctx, "sess-1", testWorkshopID).Return(session, nil).Once()
	s.mockPaymentRepo.On("SavePayment", s.ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()

	payment, err := s.service.CreatePayment(s.ctx, testWorkshopID, req)

	s.Require().NoError(err)
	s.Require().NotNil(payment.SessionID)
	s.Equal("sess-1", *payment.SessionID)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_NegativeAmount() {
	req := dto.CreatePaymentRequest{Amount: money(-100), CustomerID: "cust-1"}

	payment, err := s.service.CreatePayment(s.ctx, testWorkshopID, req)

	s.Require().Error(err)
	s.Nil(payment)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_CustomerNotInScope() {
	req := dto.CreatePaymentRequest{Amount: money(100000), CustomerID: "cust-other-tenant"}

	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-other-tenant", testWorkshopID).
		Return(nil, apperrors.ErrNotFound).Once()

	payment, err := s.service.CreatePayment(s.ctx, testWorkshopID, req)

	s.Require().Error(err)
	s.Nil(payment)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_SessionCustomerMismatch() {
	sessionID := "sess-1"
	req := dto.CreatePaymentRequest{Amount: money(100000), CustomerID: "cust-2", SessionID: &sessionID}

	customer := &domain.Customer{CustomerID: "cust-2", WorkshopID: testWorkshopID}
	session := &domain.ServiceSession{SessionID: "sess-1", CustomerID: "cust-1", WorkshopID: testWorkshopID}
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-2", testWorkshopID).Return(customer, nil).Once()
	s.mockSessionRepo.On("FindSessionByID", s.ctx, "sess-1", testWorkshopID).Return(session, nil).Once()

	payment, err := s.service.CreatePayment(s.ctx, testWorkshopID, req)

	s.Require().Error(err)
	s.Nil(payment)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
