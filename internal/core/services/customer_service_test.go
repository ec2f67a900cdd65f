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

type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
	ctx      context.Context
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockCustomerRepository)
	s.service = services.NewCustomerService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *CustomerServiceTestSuite) TestCreateCustomer() {
	req := dto.CreateCustomerRequest{Name: "Pak Joko", Phone: "081234567890"}

	var saved domain.Customer
	s.mockRepo.On("SaveCustomer", s.ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Customer)
		}).Return(nil).Once()

	customer, err := s.service.CreateCustomer(s.ctx, testWorkshopID, req)

	s.Require().NoError(err)
	s.NotEmpty(customer.CustomerID)
	s.Equal(testWorkshopID, saved.WorkshopID)
	s.True(saved.TotalDebt.IsZero())
}

func (s *CustomerServiceTestSuite) TestListCustomers() {
	customers := []domain.Customer{{CustomerID: "cust-1"}, {CustomerID: "cust-2"}}
	s.mockRepo.On("FindCustomersByWorkshop", s.ctx, testWorkshopID).Return(customers, nil).Once()

	got, err := s.service.ListCustomers(s.ctx, testWorkshopID)

	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *CustomerServiceTestSuite) TestDeleteCustomer() {
	s.mockRepo.On("DeleteCustomerCascade", s.ctx, "cust-1", testWorkshopID).Return(nil).Once()

	err := s.service.DeleteCustomer(s.ctx, "cust-1", testWorkshopID)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *CustomerServiceTestSuite) TestDeleteCustomer_RepoError() {
	s.mockRepo.On("DeleteCustomerCascade", s.ctx, "cust-1", testWorkshopID).
		Return(apperrors.ErrNotFound).Once()

	err := s.service.DeleteCustomer(s.ctx, "cust-1", testWorkshopID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
