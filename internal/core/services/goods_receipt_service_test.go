package services_test

import (
	"context"
	"testing"
	"time"

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

type GoodsReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo  *MockGoodsReceiptRepository
	mockSupplierRepo *MockSupplierRepository
	mockNumbering    *MockNumberingSvc
	service          portssvc.GoodsReceiptSvcFacade

	manager  domain.Actor
	staff    domain.Actor
	readonly domain.Actor
}

func (suite *GoodsReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockGoodsReceiptRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockNumbering = new(MockNumberingSvc)
	suite.service = services.NewGoodsReceiptService(suite.mockReceiptRepo, suite.mockSupplierRepo, suite.mockNumbering)
	suite.manager = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleManager}
	suite.staff = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStaff}
	suite.readonly = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleReadOnly}
}

func (suite *GoodsReceiptServiceTestSuite) approvedReceipt() *domain.GoodsReceipt {
	productA := uuid.NewString()
	productB := uuid.NewString()
	return &domain.GoodsReceipt{
		GoodsReceiptID: uuid.NewString(),
		Number:         "GRN-0005",
		SupplierID:     uuid.NewString(),
		LocationID:     domain.DefaultLocationID,
		ReceiptDate:    testDate(),
		Status:         domain.GoodsReceiptApproved,
		Items: []domain.GoodsReceiptItem{
			{
				GoodsReceiptItemID: uuid.NewString(),
				ProductID:          productA,
				OrderedQuantity:    mustDecimal("10"),
				ReceivedQuantity:   mustDecimal("8"),
				AcceptedQuantity:   mustDecimal("8"),
			},
			{
				GoodsReceiptItemID: uuid.NewString(),
				ProductID:          productA,
				OrderedQuantity:    mustDecimal("5"),
				ReceivedQuantity:   mustDecimal("5"),
				AcceptedQuantity:   mustDecimal("3"),
			},
			{
				GoodsReceiptItemID: uuid.NewString(),
				ProductID:          productB,
				OrderedQuantity:    mustDecimal("4"),
				ReceivedQuantity:   mustDecimal("4"),
				AcceptedQuantity:   mustDecimal("0"),
			},
		},
	}
}

func (suite *GoodsReceiptServiceTestSuite) TestCompleteGoodsReceipt_AggregatesAcceptedQuantities() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	productA := receipt.Items[0].ProductID
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()
	suite.mockReceiptRepo.On("CompleteWithStock", mock.Anything, receipt.GoodsReceiptID, domain.DefaultLocationID,
		mock.MatchedBy(func(increments map[string]decimal.Decimal) bool {
			// Two lines of product A merge into one increment, the
			// fully rejected product B line books nothing.
			return len(increments) == 1 && increments[productA].Equal(mustDecimal("11"))
		}),
		suite.manager.UserID, mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	completed, err := suite.service.CompleteGoodsReceipt(ctx, suite.manager, receipt.GoodsReceiptID)

	suite.Require().NoError(err)
	suite.Require().NotNil(completed)
	suite.Equal(domain.GoodsReceiptCompleted, completed.Status)
	suite.True(completed.StockUpdated)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *GoodsReceiptServiceTestSuite) TestCompleteGoodsReceipt_StockAlreadyBooked() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	receipt.StockUpdated = true
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()

	completed, err := suite.service.CompleteGoodsReceipt(ctx, suite.manager, receipt.GoodsReceiptID)

	suite.Require().Error(err)
	suite.Nil(completed)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "CompleteWithStock",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoodsReceiptServiceTestSuite) TestCompleteGoodsReceipt_DraftRejected() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	receipt.Status = domain.GoodsReceiptDraft
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()

	_, err := suite.service.CompleteGoodsReceipt(ctx, suite.manager, receipt.GoodsReceiptID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *GoodsReceiptServiceTestSuite) TestCompleteGoodsReceipt_StaffForbidden() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()

	_, err := suite.service.CompleteGoodsReceipt(ctx, suite.staff, receipt.GoodsReceiptID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "CompleteWithStock",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoodsReceiptServiceTestSuite) TestInspectGoodsReceipt_RecordsAcceptedQuantities() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	receipt.Status = domain.GoodsReceiptDraft
	lineID := receipt.Items[0].GoodsReceiptItemID
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()
	suite.mockReceiptRepo.On("UpdateGoodsReceipt", mock.Anything,
		mock.MatchedBy(func(r domain.GoodsReceipt) bool {
			return r.Status == domain.GoodsReceiptInspected && r.Items[0].AcceptedQuantity.Equal(mustDecimal("6"))
		}),
	).Return(nil).Once()

	inspected, err := suite.service.InspectGoodsReceipt(ctx, suite.staff, receipt.GoodsReceiptID, dto.InspectGoodsReceiptRequest{
		Items: []dto.InspectGoodsReceiptItem{
			{GoodsReceiptItemID: lineID, AcceptedQuantity: mustDecimal("6")},
		},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.GoodsReceiptInspected, inspected.Status)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *GoodsReceiptServiceTestSuite) TestInspectGoodsReceipt_AcceptedAboveReceived() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	receipt.Status = domain.GoodsReceiptDraft
	lineID := receipt.Items[0].GoodsReceiptItemID
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()

	_, err := suite.service.InspectGoodsReceipt(ctx, suite.staff, receipt.GoodsReceiptID, dto.InspectGoodsReceiptRequest{
		Items: []dto.InspectGoodsReceiptItem{
			{GoodsReceiptItemID: lineID, AcceptedQuantity: mustDecimal("9")},
		},
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "UpdateGoodsReceipt", mock.Anything, mock.Anything)
}

func (suite *GoodsReceiptServiceTestSuite) TestInspectGoodsReceipt_UnknownLine() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	receipt.Status = domain.GoodsReceiptDraft
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()

	_, err := suite.service.InspectGoodsReceipt(ctx, suite.staff, receipt.GoodsReceiptID, dto.InspectGoodsReceiptRequest{
		Items: []dto.InspectGoodsReceiptItem{
			{GoodsReceiptItemID: uuid.NewString(), AcceptedQuantity: mustDecimal("1")},
		},
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoodsReceiptServiceTestSuite) TestTransitionGoodsReceipt_ReservedActionsRedirected() {
	ctx := context.Background()

	_, err := suite.service.TransitionGoodsReceipt(ctx, suite.staff, uuid.NewString(), "inspect")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.TransitionGoodsReceipt(ctx, suite.manager, uuid.NewString(), "complete")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "FindGoodsReceiptByID", mock.Anything, mock.Anything)
}

func (suite *GoodsReceiptServiceTestSuite) TestTransitionGoodsReceipt_Approve() {
	ctx := context.Background()
	receipt := suite.approvedReceipt()
	receipt.Status = domain.GoodsReceiptInspected
	suite.mockReceiptRepo.On("FindGoodsReceiptByID", mock.Anything, receipt.GoodsReceiptID).Return(receipt, nil).Once()
	suite.mockReceiptRepo.On("UpdateGoodsReceiptStatus", mock.Anything, receipt.GoodsReceiptID,
		domain.GoodsReceiptApproved, suite.manager.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.TransitionGoodsReceipt(ctx, suite.manager, receipt.GoodsReceiptID, "approve")

	suite.Require().NoError(err)
	suite.Equal(domain.GoodsReceiptApproved, updated.Status)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *GoodsReceiptServiceTestSuite) TestCreateGoodsReceipt_AcceptedDefaultsToReceived() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	suite.mockSupplierRepo.On("FindSupplierByID", mock.Anything, supplierID).
		Return(&domain.Supplier{SupplierID: supplierID}, nil).Once()
	suite.mockNumbering.On("NextNumber", mock.Anything, domain.DocTypeGoodsReceipt).Return("GRN-0001", nil).Once()
	suite.mockReceiptRepo.On("SaveGoodsReceipt", mock.Anything,
		mock.MatchedBy(func(r domain.GoodsReceipt) bool {
			return r.Number == "GRN-0001" &&
				r.Status == domain.GoodsReceiptDraft &&
				r.LocationID == domain.DefaultLocationID &&
				r.Items[0].AcceptedQuantity.Equal(mustDecimal("8"))
		}),
	).Return(nil).Once()

	receipt, err := suite.service.CreateGoodsReceipt(ctx, suite.staff, dto.SaveGoodsReceiptRequest{
		SupplierID:  supplierID,
		ReceiptDate: testDate().Add(24 * time.Hour),
		Items: []dto.GoodsReceiptItemRequest{
			{
				ProductID:        uuid.NewString(),
				OrderedQuantity:  mustDecimal("10"),
				ReceivedQuantity: mustDecimal("8"),
			},
		},
	})

	suite.Require().NoError(err)
	suite.Equal("GRN-0001", receipt.Number)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *GoodsReceiptServiceTestSuite) TestCreateGoodsReceipt_ReadOnlyForbidden() {
	ctx := context.Background()

	_, err := suite.service.CreateGoodsReceipt(ctx, suite.readonly, dto.SaveGoodsReceiptRequest{})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "SaveGoodsReceipt", mock.Anything, mock.Anything)
}

func TestGoodsReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoodsReceiptServiceTestSuite))
}
