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

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type QuotationServiceTestSuite struct {
	suite.Suite
	mockQuotationRepo *MockQuotationRepository
	mockCustomerRepo  *MockCustomerRepository
	mockTaxRateRepo   *MockTaxRateRepository
	mockNumbering     *MockNumberingSvc
	service           portssvc.QuotationSvcFacade

	manager domain.Actor
	staff   domain.Actor
}

func (suite *QuotationServiceTestSuite) SetupTest() {
	suite.mockQuotationRepo = new(MockQuotationRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockTaxRateRepo = new(MockTaxRateRepository)
	suite.mockNumbering = new(MockNumberingSvc)
	suite.service = services.NewQuotationService(
		suite.mockQuotationRepo,
		suite.mockCustomerRepo,
		suite.mockTaxRateRepo,
		suite.mockNumbering,
	)
	suite.manager = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleManager}
	suite.staff = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStaff}
}

func (suite *QuotationServiceTestSuite) saveRequest() dto.SaveQuotationRequest {
	return dto.SaveQuotationRequest{
		CustomerID:    "cust-1",
		QuotationDate: testDate(),
		Items: []dto.LineItemRequest{
			{
				Description:     "Widget",
				Quantity:        mustDecimal("2"),
				UnitPrice:       mustDecimal("100"),
				DiscountPercent: mustDecimal("10"),
			},
		},
		TaxRateIDs: []string{"tax-1"},
	}
}

func (suite *QuotationServiceTestSuite) expectLookups() {
	suite.mockCustomerRepo.On("FindCustomerByID", mock.Anything, "cust-1").
		Return(&domain.Customer{CustomerID: "cust-1", Name: "Acme"}, nil)
	suite.mockTaxRateRepo.On("FindTaxRatesByIDs", mock.Anything, []string{"tax-1"}).
		Return(map[string]domain.TaxRate{
			"tax-1": {TaxRateID: "tax-1", Name: "GST", Value: mustDecimal("18"), Enabled: true},
		}, nil)
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_ComputesTotals() {
	ctx := context.Background()
	suite.expectLookups()
	suite.mockNumbering.On("NextNumber", mock.Anything, domain.DocTypeQuotation).Return("SQ-0001", nil).Once()
	suite.mockQuotationRepo.On("SaveQuotation", mock.Anything, mock.MatchedBy(func(q domain.Quotation) bool {
		return q.Number == "SQ-0001" &&
			q.Status == domain.QuotationDraft &&
			q.Subtotal.Equal(mustDecimal("200")) &&
			q.DiscountAmount.Equal(mustDecimal("20")) &&
			q.TaxAmount.Equal(mustDecimal("32.4")) &&
			q.Total.Equal(mustDecimal("212.4")) &&
			q.CreatedBy == suite.manager.UserID
	})).Return(nil).Once()

	quotation, err := suite.service.CreateQuotation(ctx, suite.manager, suite.saveRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(quotation)
	suite.Equal("SQ-0001", quotation.Number)
	suite.True(quotation.Total.Equal(mustDecimal("212.4")), "total should be 212.4, got %s", quotation.Total)
	suite.Len(quotation.AppliedTaxes, 1)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
	suite.mockNumbering.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_TotalsMismatchRejected() {
	ctx := context.Background()
	suite.expectLookups()

	req := suite.saveRequest()
	req.Totals = &dto.TotalsRequest{
		Subtotal:       mustDecimal("200"),
		DiscountAmount: mustDecimal("20"),
		TaxAmount:      mustDecimal("32.4"),
		Total:          mustDecimal("999"),
	}

	quotation, err := suite.service.CreateQuotation(ctx, suite.manager, req)

	suite.Require().Error(err)
	suite.Nil(quotation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuotationRepo.AssertNotCalled(suite.T(), "SaveQuotation", mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_MatchingClientTotalsAccepted() {
	ctx := context.Background()
	suite.expectLookups()
	suite.mockNumbering.On("NextNumber", mock.Anything, domain.DocTypeQuotation).Return("SQ-0002", nil).Once()
	suite.mockQuotationRepo.On("SaveQuotation", mock.Anything, mock.AnythingOfType("domain.Quotation")).Return(nil).Once()

	req := suite.saveRequest()
	req.Totals = &dto.TotalsRequest{
		Subtotal:       mustDecimal("200"),
		DiscountAmount: mustDecimal("20"),
		TaxAmount:      mustDecimal("32.4"),
		Total:          mustDecimal("212.4"),
	}

	_, err := suite.service.CreateQuotation(ctx, suite.manager, req)

	suite.Require().NoError(err)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_ReadOnlyForbidden() {
	ctx := context.Background()
	readOnly := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleReadOnly}

	quotation, err := suite.service.CreateQuotation(ctx, readOnly, suite.saveRequest())

	suite.Require().Error(err)
	suite.Nil(quotation)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_DisabledTaxRateRejected() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCustomerByID", mock.Anything, "cust-1").
		Return(&domain.Customer{CustomerID: "cust-1"}, nil)
	suite.mockTaxRateRepo.On("FindTaxRatesByIDs", mock.Anything, []string{"tax-1"}).
		Return(map[string]domain.TaxRate{
			"tax-1": {TaxRateID: "tax-1", Name: "Old VAT", Value: mustDecimal("12"), Enabled: false},
		}, nil)

	_, err := suite.service.CreateQuotation(ctx, suite.manager, suite.saveRequest())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuotationServiceTestSuite) TestUpdateQuotation_NonDraftRejected() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	suite.mockQuotationRepo.On("FindQuotationByID", mock.Anything, quotationID).
		Return(&domain.Quotation{QuotationID: quotationID, Number: "SQ-0005", Status: domain.QuotationSent}, nil).Once()

	quotation, err := suite.service.UpdateQuotation(ctx, suite.manager, quotationID, suite.saveRequest())

	suite.Require().Error(err)
	suite.Nil(quotation)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockQuotationRepo.AssertNotCalled(suite.T(), "UpdateQuotation", mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestTransitionQuotation_ConvertActionRedirected() {
	ctx := context.Background()

	quotation, err := suite.service.TransitionQuotation(ctx, suite.manager, uuid.NewString(), "convert")

	suite.Require().Error(err)
	suite.Nil(quotation)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuotationServiceTestSuite) TestConvertQuotation_Success() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approved := &domain.Quotation{
		QuotationID: quotationID,
		Number:      "SQ-0003",
		CustomerID:  "cust-1",
		Items: []domain.LineItem{
			{LineItemID: uuid.NewString(), Description: "Widget", Quantity: mustDecimal("2"), UnitPrice: mustDecimal("100")},
		},
		AppliedTaxes: []domain.AppliedTax{{TaxRateID: "tax-1", Name: "GST", Value: mustDecimal("18")}},
		TotalsSnapshot: domain.TotalsSnapshot{
			Subtotal:  mustDecimal("200"),
			TaxAmount: mustDecimal("36"),
			Total:     mustDecimal("236"),
		},
		Status: domain.QuotationApproved,
	}
	suite.mockQuotationRepo.On("FindQuotationByID", mock.Anything, quotationID).Return(approved, nil).Once()
	suite.mockNumbering.On("NextNumber", mock.Anything, domain.DocTypeInvoice).Return("SI-0001", nil).Once()
	suite.mockQuotationRepo.On("ConvertToInvoice", mock.Anything, quotationID, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Number == "SI-0001" &&
			inv.SourceQuotationID == quotationID &&
			inv.Status == domain.InvoiceDraft &&
			inv.PaidAmount.IsZero() &&
			inv.BalanceAmount.Equal(mustDecimal("236")) &&
			len(inv.Items) == 1
	}), suite.manager.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	invoice, err := suite.service.ConvertQuotationToInvoice(ctx, suite.manager, quotationID, dto.ConvertQuotationRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal("SI-0001", invoice.Number)
	suite.NotEqual(approved.Items[0].LineItemID, invoice.Items[0].LineItemID, "invoice lines must get fresh IDs")
	suite.mockQuotationRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestConvertQuotation_AlreadyConverted() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	suite.mockQuotationRepo.On("FindQuotationByID", mock.Anything, quotationID).
		Return(&domain.Quotation{
			QuotationID:        quotationID,
			Number:             "SQ-0004",
			Status:             domain.QuotationApproved,
			ConvertedToInvoice: true,
		}, nil).Once()

	invoice, err := suite.service.ConvertQuotationToInvoice(ctx, suite.manager, quotationID, dto.ConvertQuotationRequest{})

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockNumbering.AssertNotCalled(suite.T(), "NextNumber", mock.Anything, mock.Anything)
	suite.mockQuotationRepo.AssertNotCalled(suite.T(), "ConvertToInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestConvertQuotation_WrongStatus() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	suite.mockQuotationRepo.On("FindQuotationByID", mock.Anything, quotationID).
		Return(&domain.Quotation{QuotationID: quotationID, Status: domain.QuotationDraft}, nil).Once()

	invoice, err := suite.service.ConvertQuotationToInvoice(ctx, suite.manager, quotationID, dto.ConvertQuotationRequest{})

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *QuotationServiceTestSuite) TestConvertQuotation_StaffForbidden() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	suite.mockQuotationRepo.On("FindQuotationByID", mock.Anything, quotationID).
		Return(&domain.Quotation{QuotationID: quotationID, Status: domain.QuotationApproved}, nil).Once()

	invoice, err := suite.service.ConvertQuotationToInvoice(ctx, suite.staff, quotationID, dto.ConvertQuotationRequest{})

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestQuotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotationServiceTestSuite))
}
