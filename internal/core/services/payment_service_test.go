package services_test

import (
	"context"
	"testing"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/core/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockInvoiceRepo *MockInvoiceRepository
	mockNumbering   *MockNumberingSvc
	service         portssvc.PaymentSvcFacade

	manager domain.Actor
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockNumbering = new(MockNumberingSvc)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockInvoiceRepo, suite.mockNumbering)
	suite.manager = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleManager}
}

func (suite *PaymentServiceTestSuite) sentInvoice(total string) *domain.Invoice {
	amount := mustDecimal(total)
	return &domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         "SI-0010",
		Status:         domain.InvoiceSent,
		TotalsSnapshot: domain.TotalsSnapshot{Total: amount},
		PaidAmount:     mustDecimal("0"),
		BalanceAmount:  amount,
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PartialLeavesBalance() {
	ctx := context.Background()
	invoice := suite.sentInvoice("500")
	suite.mockInvoiceRepo.On("FindInvoiceByID", mock.Anything, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockNumbering.On("NextNumber", mock.Anything, domain.DocTypePayment).Return("PAY-0001", nil).Once()
	suite.mockInvoiceRepo.On("ApplyPayment", mock.Anything,
		mock.MatchedBy(func(p domain.Payment) bool {
			return p.InvoiceID == invoice.InvoiceID && p.Amount.Equal(mustDecimal("200")) && p.Number == "PAY-0001"
		}),
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(mustDecimal("200")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.Equal(mustDecimal("300")) }),
		domain.InvoicePartial,
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.manager, invoice.InvoiceID, dto.RecordPaymentRequest{
		Amount: mustDecimal("200"),
		Method: "CASH",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal("PAY-0001", payment.Number)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_FullPaymentMarksPaid() {
	ctx := context.Background()
	invoice := suite.sentInvoice("500")
	suite.mockInvoiceRepo.On("FindInvoiceByID", mock.Anything, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockNumbering.On("NextNumber", mock.Anything, domain.DocTypePayment).Return("PAY-0002", nil).Once()
	suite.mockInvoiceRepo.On("ApplyPayment", mock.Anything,
		mock.AnythingOfType("domain.Payment"),
		mock.Anything,
		mock.Anything,
		domain.InvoicePaid,
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.manager, invoice.InvoiceID, dto.RecordPaymentRequest{
		Amount: mustDecimal("500"),
		Method: "BANK_TRANSFER",
	})

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_OverpaymentRejected() {
	ctx := context.Background()
	invoice := suite.sentInvoice("500")
	suite.mockInvoiceRepo.On("FindInvoiceByID", mock.Anything, invoice.InvoiceID).Return(invoice, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.manager, invoice.InvoiceID, dto.RecordPaymentRequest{
		Amount: mustDecimal("500.01"),
		Method: "CASH",
	})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, services.ErrOverpayment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ApplyPayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DraftInvoiceRejected() {
	ctx := context.Background()
	invoice := suite.sentInvoice("500")
	invoice.Status = domain.InvoiceDraft
	suite.mockInvoiceRepo.On("FindInvoiceByID", mock.Anything, invoice.InvoiceID).Return(invoice, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.manager, invoice.InvoiceID, dto.RecordPaymentRequest{
		Amount: mustDecimal("100"),
		Method: "CASH",
	})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvalidInput() {
	ctx := context.Background()

	_, err := suite.service.RecordPayment(ctx, suite.manager, uuid.NewString(), dto.RecordPaymentRequest{
		Amount: mustDecimal("0"),
		Method: "CASH",
	})
	suite.ErrorIs(err, apperrors.ErrValidation, "zero amount must be rejected")

	_, err = suite.service.RecordPayment(ctx, suite.manager, uuid.NewString(), dto.RecordPaymentRequest{
		Amount: mustDecimal("100"),
		Method: "BARTER",
	})
	suite.ErrorIs(err, apperrors.ErrValidation, "unknown method must be rejected")
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByInvoice_EmptyNotNil() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	suite.mockPaymentRepo.On("FindPaymentsByInvoiceID", mock.Anything, invoiceID).
		Return([]domain.Payment{}, nil).Once()

	payments, err := suite.service.ListPaymentsByInvoice(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.NotNil(payments)
	suite.Empty(payments)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
