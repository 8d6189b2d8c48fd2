package services_test

import (
	"context"
	"testing"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseOrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo    *MockPurchaseOrderRepository
	mockSupplierRepo *MockSupplierRepository
	mockTaxRateRepo  *MockTaxRateRepository
	mockNumbering    *MockNumberingSvc
	service          portssvc.PurchaseOrderSvcFacade

	manager domain.Actor
	staff   domain.Actor
}

func (suite *PurchaseOrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockPurchaseOrderRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockTaxRateRepo = new(MockTaxRateRepository)
	suite.mockNumbering = new(MockNumberingSvc)
	suite.service = services.NewPurchaseOrderService(suite.mockOrderRepo, suite.mockSupplierRepo, suite.mockTaxRateRepo, suite.mockNumbering)
	suite.manager = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleManager}
	suite.staff = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStaff}
}

func (suite *PurchaseOrderServiceTestSuite) approvedOrder() *domain.PurchaseOrder {
	return &domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		Number:          "PO-0003",
		SupplierID:      uuid.NewString(),
		LocationID:      domain.DefaultLocationID,
		Status:          domain.PurchaseOrderApproved,
		Items: []domain.LineItem{
			{
				LineItemID:  uuid.NewString(),
				ProductID:   uuid.NewString(),
				Description: "Steel brackets",
				Quantity:    mustDecimal("10"),
				UnitPrice:   mustDecimal("25.50"),
			},
			{
				LineItemID:  uuid.NewString(),
				Description: "Freight",
				Quantity:    mustDecimal("1"),
				UnitPrice:   mustDecimal("80"),
			},
		},
	}
}

func (suite *PurchaseOrderServiceTestSuite) TestConvertPurchaseOrder_PrefillsReceiptFromOrderLines() {
	ctx := context.Background()
	order := suite.approvedOrder()
	suite.mockOrderRepo.On("FindPurchaseOrderByID", mock.Anything, order.PurchaseOrderID).Return(order, nil).Once()
	suite.mockNumbering.On("NextNumber", mock.Anything, domain.DocTypeGoodsReceipt).Return("GRN-0001", nil).Once()
	suite.mockOrderRepo.On("ConvertToGoodsReceipt", mock.Anything, order.PurchaseOrderID,
		mock.MatchedBy(func(r domain.GoodsReceipt) bool {
			first := r.Items[0]
			return r.Number == "GRN-0001" &&
				r.Status == domain.GoodsReceiptDraft &&
				r.PurchaseOrderID == order.PurchaseOrderID &&
				r.SupplierID == order.SupplierID &&
				len(r.Items) == 2 &&
				first.OrderedQuantity.Equal(mustDecimal("10")) &&
				first.ReceivedQuantity.Equal(mustDecimal("10")) &&
				first.AcceptedQuantity.Equal(mustDecimal("10")) &&
				first.UnitCost.Equal(mustDecimal("25.50")) &&
				first.GoodsReceiptItemID != order.Items[0].LineItemID
		}),
		suite.manager.UserID, mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	receipt, err := suite.service.ConvertPurchaseOrderToGoodsReceipt(ctx, suite.manager, order.PurchaseOrderID)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Equal("GRN-0001", receipt.Number)
	suite.Equal(domain.GoodsReceiptDraft, receipt.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestConvertPurchaseOrder_AlreadyConverted() {
	ctx := context.Background()
	order := suite.approvedOrder()
	order.ConvertedToGRN = true
	suite.mockOrderRepo.On("FindPurchaseOrderByID", mock.Anything, order.PurchaseOrderID).Return(order, nil).Once()

	receipt, err := suite.service.ConvertPurchaseOrderToGoodsReceipt(ctx, suite.manager, order.PurchaseOrderID)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.mockNumbering.AssertNotCalled(suite.T(), "NextNumber", mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ConvertToGoodsReceipt",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestConvertPurchaseOrder_DraftRejected() {
	ctx := context.Background()
	order := suite.approvedOrder()
	order.Status = domain.PurchaseOrderDraft
	suite.mockOrderRepo.On("FindPurchaseOrderByID", mock.Anything, order.PurchaseOrderID).Return(order, nil).Once()

	_, err := suite.service.ConvertPurchaseOrderToGoodsReceipt(ctx, suite.manager, order.PurchaseOrderID)

	suite.ErrorIs(err, apperrors.ErrPrecondition)
}

func (suite *PurchaseOrderServiceTestSuite) TestConvertPurchaseOrder_StaffForbidden() {
	ctx := context.Background()
	order := suite.approvedOrder()
	suite.mockOrderRepo.On("FindPurchaseOrderByID", mock.Anything, order.PurchaseOrderID).Return(order, nil).Once()

	_, err := suite.service.ConvertPurchaseOrderToGoodsReceipt(ctx, suite.staff, order.PurchaseOrderID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ConvertToGoodsReceipt",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestTransitionPurchaseOrder_ConvertActionRedirected() {
	ctx := context.Background()

	_, err := suite.service.TransitionPurchaseOrder(ctx, suite.manager, uuid.NewString(), "convert")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "FindPurchaseOrderByID", mock.Anything, mock.Anything)
}

func (suite *PurchaseOrderServiceTestSuite) TestTransitionPurchaseOrder_Send() {
	ctx := context.Background()
	order := suite.approvedOrder()
	suite.mockOrderRepo.On("FindPurchaseOrderByID", mock.Anything, order.PurchaseOrderID).Return(order, nil).Once()
	suite.mockOrderRepo.On("UpdatePurchaseOrderStatus", mock.Anything, order.PurchaseOrderID,
		domain.PurchaseOrderSent, suite.staff.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.TransitionPurchaseOrder(ctx, suite.staff, order.PurchaseOrderID, "send")

	suite.Require().NoError(err)
	suite.Equal(domain.PurchaseOrderSent, updated.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseOrderServiceTestSuite) TestTransitionPurchaseOrder_StaffCannotApprove() {
	ctx := context.Background()
	order := suite.approvedOrder()
	order.Status = domain.PurchaseOrderDraft
	suite.mockOrderRepo.On("FindPurchaseOrderByID", mock.Anything, order.PurchaseOrderID).Return(order, nil).Once()

	_, err := suite.service.TransitionPurchaseOrder(ctx, suite.staff, order.PurchaseOrderID, "approve")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdatePurchaseOrderStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseOrderServiceTestSuite))
}
