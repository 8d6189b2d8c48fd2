package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/handlers"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/bizgrid/erp_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock QuotationService ---
type MockQuotationService struct {
	mock.Mock
}

func (m *MockQuotationService) GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) ListQuotations(ctx context.Context, params dto.ListQuotationsParams) (*dto.ListQuotationsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListQuotationsResponse), args.Error(1)
}
func (m *MockQuotationService) CreateQuotation(ctx context.Context, actor domain.Actor, req dto.SaveQuotationRequest) (*domain.Quotation, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) UpdateQuotation(ctx context.Context, actor domain.Actor, quotationID string, req dto.SaveQuotationRequest) (*domain.Quotation, error) {
	args := m.Called(ctx, actor, quotationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) TransitionQuotation(ctx context.Context, actor domain.Actor, quotationID string, action string) (*domain.Quotation, error) {
	args := m.Called(ctx, actor, quotationID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) ConvertQuotationToInvoice(ctx context.Context, actor domain.Actor, quotationID string, req dto.ConvertQuotationRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, actor, quotationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.QuotationSvcFacade = (*MockQuotationService)(nil)

// --- Test Suite ---
type QuotationHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockQuotationService *MockQuotationService
	jwtSecret            string
}

// generateTestToken creates a signed JWT carrying the given role.
func (suite *QuotationHandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "erp-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *QuotationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidations()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockQuotationService = new(MockQuotationService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterQuotationRoutes(v1, suite.mockQuotationService)
}

// --- Test Cases ---

func (suite *QuotationHandlerTestSuite) TestGetQuotation_Success() {
	quotationID := uuid.NewString()
	userID := uuid.NewString()

	expected := &domain.Quotation{
		QuotationID:   quotationID,
		Number:        "SQ-0001",
		CustomerID:    uuid.NewString(),
		QuotationDate: time.Now().UTC().Truncate(time.Second),
		Status:        domain.QuotationSent,
		TotalsSnapshot: domain.TotalsSnapshot{
			Subtotal:       decimal.NewFromInt(200),
			DiscountAmount: decimal.NewFromInt(20),
			TaxAmount:      decimal.RequireFromString("32.4"),
			Total:          decimal.RequireFromString("212.4"),
		},
	}
	suite.mockQuotationService.On("GetQuotationByID", mock.Anything, quotationID).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/quotations/"+quotationID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleManager))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.QuotationResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(quotationID, body.QuotationID)
	suite.Equal("SQ-0001", body.Number)
	suite.True(body.Totals.Total.Equal(decimal.RequireFromString("212.4")))
	// Managers acting on a sent quotation may approve, reject or expire it.
	suite.ElementsMatch([]string{"approve", "reject", "expire"}, body.AvailableActions)

	suite.mockQuotationService.AssertExpectations(suite.T())
}

func (suite *QuotationHandlerTestSuite) TestGetQuotation_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/quotations/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockQuotationService.AssertNotCalled(suite.T(), "GetQuotationByID")
}

func (suite *QuotationHandlerTestSuite) TestCreateQuotation_TotalsMismatchReturns400() {
	userID := uuid.NewString()
	serviceErr := fmt.Errorf("%w: totals mismatch", apperrors.ErrValidation)
	suite.mockQuotationService.On("CreateQuotation", mock.Anything,
		mock.MatchedBy(func(a domain.Actor) bool { return a.UserID == userID && a.Role == domain.RoleStaff }),
		mock.AnythingOfType("dto.SaveQuotationRequest"),
	).Return(nil, serviceErr).Once()

	payload := dto.SaveQuotationRequest{
		CustomerID:    uuid.NewString(),
		QuotationDate: time.Now().UTC(),
		Items: []dto.LineItemRequest{
			{Description: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
		},
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/quotations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleStaff))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockQuotationService.AssertExpectations(suite.T())
}

func (suite *QuotationHandlerTestSuite) TestConvertQuotation_AlreadyConvertedReturns412() {
	quotationID := uuid.NewString()
	userID := uuid.NewString()
	serviceErr := fmt.Errorf("%w: quotation already converted", apperrors.ErrPrecondition)
	suite.mockQuotationService.On("ConvertQuotationToInvoice", mock.Anything,
		mock.AnythingOfType("domain.Actor"), quotationID, mock.AnythingOfType("dto.ConvertQuotationRequest"),
	).Return(nil, serviceErr).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/quotations/"+quotationID+"/convert", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleManager))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusPreconditionFailed, w.Code)
	suite.mockQuotationService.AssertExpectations(suite.T())
}

func (suite *QuotationHandlerTestSuite) TestApproveQuotation_PassesActionToService() {
	quotationID := uuid.NewString()
	userID := uuid.NewString()
	approved := &domain.Quotation{
		QuotationID: quotationID,
		Number:      "SQ-0002",
		Status:      domain.QuotationApproved,
	}
	suite.mockQuotationService.On("TransitionQuotation", mock.Anything,
		mock.MatchedBy(func(a domain.Actor) bool { return a.Role == domain.RoleManager }),
		quotationID, "approve",
	).Return(approved, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/quotations/"+quotationID+"/approve", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleManager))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.QuotationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(string(domain.QuotationApproved), body.Status)
	suite.mockQuotationService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestQuotationHandler(t *testing.T) {
	suite.Run(t, new(QuotationHandlerTestSuite))
}
