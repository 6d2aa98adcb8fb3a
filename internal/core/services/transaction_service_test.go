package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trackmint/transaction_tracker/internal/apperrors"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portssvc "github.com/trackmint/transaction_tracker/internal/core/ports/services"
	"github.com/trackmint/transaction_tracker/internal/core/services"
	"github.com/trackmint/transaction_tracker/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SummarizeByCurrency(ctx context.Context, userID string) ([]domain.CurrencySummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencySummary), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	registry := domain.NewCurrencyRegistry(domain.DefaultCurrencies())
	suite.service = services.NewTransactionService(suite.mockRepo, services.NewCurrencyService(registry))
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.RequireFromString("100.00"),
		Currency: "usd",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == userID &&
			txn.Amount == int64(1_000_000) &&
			txn.Currency == "USD" &&
			txn.TransactionID != "" &&
			!txn.CreatedAt.IsZero()
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(int64(1_000_000), txn.Amount)
	suite.Equal("USD", txn.Currency)
	suite.Equal(userID, txn.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RoundsHalfAwayFromZero() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.RequireFromString("10.995"),
		Currency: "EUR",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount == int64(110_000)
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().NoError(err)
	suite.Equal(int64(110_000), txn.Amount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MalformedCurrency() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.RequireFromString("100"),
		Currency: "1$2",
	}

	_, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInvalidCurrencyFormat))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnsupportedCurrency() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.RequireFromString("100"),
		Currency: "XYZ",
	}

	_, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnsupportedCurrency))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.Zero,
		Currency: "USD",
	}

	_, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInvalidAmount))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_NotFoundPassthrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, userID, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetTransaction(ctx, userID, transactionID)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_OffsetMath() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindTransactionsByUser", ctx, userID, 10, 20).
		Return([]domain.Transaction{}, int64(25), nil).Once()

	txns, total, err := suite.service.ListTransactions(ctx, userID, 3, 10)

	suite.Require().NoError(err)
	suite.Empty(txns)
	suite.Equal(int64(25), total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RejectsBadParams() {
	ctx := context.Background()
	userID := uuid.NewString()

	testCases := []struct {
		name    string
		page    int
		perPage int
	}{
		{name: "page zero", page: 0, perPage: 10},
		{name: "negative page", page: -1, perPage: 10},
		{name: "perPage zero", page: 1, perPage: 0},
		{name: "negative perPage", page: 1, perPage: -5},
		{name: "perPage over limit", page: 1, perPage: 51},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, _, err := suite.service.ListTransactions(ctx, userID, tc.page, tc.perPage)
			suite.Require().Error(err)
			suite.True(errors.Is(err, apperrors.ErrValidation))
		})
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionsByUser")
}

func (suite *TransactionServiceTestSuite) TestSummarizeByCurrency_EmptyNotNil() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("SummarizeByCurrency", ctx, userID).
		Return(nil, nil).Once()

	summaries, err := suite.service.SummarizeByCurrency(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(summaries)
	suite.Empty(summaries)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSummarizeByCurrency_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.CurrencySummary{
		{Currency: "EUR", Total: 55_000},
		{Currency: "USD", Total: 400_000},
	}

	suite.mockRepo.On("SummarizeByCurrency", ctx, userID).
		Return(expected, nil).Once()

	summaries, err := suite.service.SummarizeByCurrency(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, summaries)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
