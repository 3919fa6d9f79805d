package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	now      time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo,
		services.WithTransactionClock(func() time.Time { return suite.now }))
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func validCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Amount:      decimal.RequireFromString("800"),
		Description: "  Dinner out  ",
		Date:        "2024-03-05",
		Category:    domain.CategoryFoodDining,
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, validCreateRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TransactionID)
	suite.Equal("Dinner out", created.Description)
	suite.True(created.Amount.Equal(decimal.NewFromInt(800)))
	suite.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), created.Date)
	suite.Equal(suite.now, created.CreatedAt)
	suite.Equal(suite.now, created.UpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_StampsAtStorePrecision() {
	ctx := context.Background()
	suite.now = time.Date(2024, time.March, 20, 10, 0, 0, 987654321, time.UTC)
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	req := validCreateRequest()
	req.Date = "2024-03-05T10:00:00.123456789Z"

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(123456000, created.Date.Nanosecond())
	suite.Equal(987654000, created.CreatedAt.Nanosecond())
	suite.Equal(created.CreatedAt, created.UpdatedAt)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	for _, amount := range []string{"0", "-5"} {
		req := validCreateRequest()
		req.Amount = decimal.RequireFromString(amount)

		_, err := suite.service.CreateTransaction(context.Background(), req)

		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsBadInput() {
	cases := map[string]func(*dto.CreateTransactionRequest){
		"blank description": func(r *dto.CreateTransactionRequest) { r.Description = "   " },
		"unknown category":  func(r *dto.CreateTransactionRequest) { r.Category = "Gambling" },
		"bad date":          func(r *dto.CreateTransactionRequest) { r.Date = "05/03/2024" },
	}
	for name, mutate := range cases {
		req := validCreateRequest()
		mutate(&req)

		_, err := suite.service.CreateTransaction(context.Background(), req)

		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaveError() {
	ctx := context.Background()
	repoErr := errors.New("db down")
	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(repoErr).Once()

	created, err := suite.service.CreateTransaction(ctx, validCreateRequest())

	suite.Nil(created)
	suite.ErrorIs(err, repoErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetTransactionByID(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NilBecomesEmpty() {
	ctx := context.Background()
	filter := domain.TransactionFilter{}
	suite.mockRepo.On("FindTransactions", ctx, filter).Return(nil, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, filter)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Success() {
	ctx := context.Background()
	req := dto.UpdateTransactionRequest(validCreateRequest())
	stored := &domain.Transaction{TransactionID: "t1", Amount: req.Amount, Description: "Dinner out"}

	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID == "t1" && txn.Description == "Dinner out" && txn.UpdatedAt.Equal(suite.now)
	})).Return(stored, nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, "t1", req)

	suite.Require().NoError(err)
	suite.Equal(stored, updated)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Validation() {
	req := dto.UpdateTransactionRequest(validCreateRequest())
	req.Amount = decimal.Zero

	_, err := suite.service.UpdateTransaction(context.Background(), "t1", req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteTransaction", ctx, "t1").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, "t1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
