package services

import (
	"context"
	"fmt"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/utils/totals"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrTotalsMismatch is returned when client-supplied totals disagree with the
// server-side calculation beyond the rounding tolerance.
var ErrTotalsMismatch = fmt.Errorf("%w: submitted totals do not match calculated totals", apperrors.ErrValidation)

// totalsTolerance absorbs client-side float rounding; anything beyond a cent
// is a real disagreement.
var totalsTolerance = decimal.NewFromFloat(0.01)

var percentMax = decimal.NewFromInt(100)

// buildLineItems validates and converts request rows into domain line items,
// assigning fresh IDs.
func buildLineItems(items []dto.LineItemRequest) ([]domain.LineItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: document must have at least one line item", apperrors.ErrValidation)
	}
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		if !item.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: line %d: quantity must be positive", apperrors.ErrValidation, i+1)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line %d: unit price must not be negative", apperrors.ErrValidation, i+1)
		}
		if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(percentMax) {
			return nil, fmt.Errorf("%w: line %d: discount percent must be between 0 and 100", apperrors.ErrValidation, i+1)
		}
		out[i] = domain.LineItem{
			LineItemID:      uuid.NewString(),
			ProductID:       item.ProductID,
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
		}
	}
	return out, nil
}

// validateOverallDiscount bounds the document-level discount percentage.
func validateOverallDiscount(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(percentMax) {
		return fmt.Errorf("%w: overall discount percent must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

// resolveAppliedTaxes loads the requested tax rates and snapshots them onto
// the document. Unknown or disabled rates are rejected.
func resolveAppliedTaxes(ctx context.Context, repo portsrepo.TaxRateRepositoryFacade, taxRateIDs []string) ([]domain.AppliedTax, error) {
	if len(taxRateIDs) == 0 {
		return nil, nil
	}
	rates, err := repo.FindTaxRatesByIDs(ctx, taxRateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax rates: %w", err)
	}
	applied := make([]domain.AppliedTax, 0, len(taxRateIDs))
	seen := make(map[string]struct{}, len(taxRateIDs))
	for _, id := range taxRateIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: tax rate %s applied twice", apperrors.ErrValidation, id)
		}
		seen[id] = struct{}{}
		rate, ok := rates[id]
		if !ok {
			return nil, fmt.Errorf("%w: tax rate %s not found", apperrors.ErrValidation, id)
		}
		if !rate.Enabled {
			return nil, fmt.Errorf("%w: tax rate %s is disabled", apperrors.ErrValidation, rate.Name)
		}
		applied = append(applied, domain.AppliedTax{
			TaxRateID: rate.TaxRateID,
			Name:      rate.Name,
			Value:     rate.Value,
		})
	}
	return applied, nil
}

// verifyClientTotals cross-checks client-submitted figures against the
// server-side result. Nil means the client sent none, which is fine.
func verifyClientTotals(result totals.Result, submitted *dto.TotalsRequest) error {
	if submitted == nil {
		return nil
	}
	snap := result.Snapshot()
	if snap.Total.Sub(submitted.Total).Abs().GreaterThan(totalsTolerance) ||
		snap.TaxAmount.Sub(submitted.TaxAmount).Abs().GreaterThan(totalsTolerance) ||
		snap.DiscountAmount.Sub(submitted.DiscountAmount).Abs().GreaterThan(totalsTolerance) ||
		snap.Subtotal.Sub(submitted.Subtotal).Abs().GreaterThan(totalsTolerance) {
		return fmt.Errorf("%w: calculated total %s, submitted %s", ErrTotalsMismatch,
			snap.Total.StringFixed(2), submitted.Total.StringFixed(2))
	}
	return nil
}

// requireManageRole rejects actors whose role cannot mutate records.
func requireManageRole(actor domain.Actor) error {
	if !actor.Role.CanManage() {
		return fmt.Errorf("%w: role %s cannot modify records", apperrors.ErrForbidden, actor.Role)
	}
	return nil
}
