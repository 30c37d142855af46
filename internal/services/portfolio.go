package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Leonardo777l/Finanzas-Leo/internal/dto"
	"github.com/Leonardo777l/Finanzas-Leo/internal/errs"
	"github.com/Leonardo777l/Finanzas-Leo/internal/models"
)

type portfolioStateStore interface {
	AddAsset(a models.Asset) models.Asset
	UpdateAsset(id string, updates dto.AssetUpdates)
	RemoveAsset(id string)
	Assets() []models.Asset
}

type portfolioService struct {
	store portfolioStateStore
}

func NewPortfolioService(store portfolioStateStore) *portfolioService {
	return &portfolioService{store: store}
}

func (s *portfolioService) List(ctx context.Context) []dto.AssetPosition {
	assets := s.store.Assets()
	positions := make([]dto.AssetPosition, len(assets))
	for i, a := range assets {
		positions[i] = position(a)
	}
	return positions
}

func (s *portfolioService) Add(ctx context.Context, req dto.CreateAssetRequest) (models.Asset, error) {
	if req.Symbol == "" {
		return models.Asset{}, errs.NewValidationError("symbol is required")
	}
	if req.Name == "" {
		return models.Asset{}, errs.NewValidationError("name is required")
	}
	if !req.Type.Valid() {
		return models.Asset{}, errs.NewValidationError(`type must be "crypto" or "stock"`)
	}
	if req.Quantity < 0 || req.AvgBuyPrice < 0 || req.CurrentPrice < 0 {
		return models.Asset{}, errs.NewValidationError("quantity and prices must not be negative")
	}
	return s.store.AddAsset(models.Asset{
		Symbol:       req.Symbol,
		Name:         req.Name,
		Type:         req.Type,
		Quantity:     req.Quantity,
		AvgBuyPrice:  req.AvgBuyPrice,
		CurrentPrice: req.CurrentPrice,
	}), nil
}

func (s *portfolioService) Update(ctx context.Context, id string, updates dto.AssetUpdates) (models.Asset, error) {
	if updates.Type != nil && !updates.Type.Valid() {
		return models.Asset{}, errs.NewValidationError(`type must be "crypto" or "stock"`)
	}
	if negative(updates.Quantity) || negative(updates.AvgBuyPrice) || negative(updates.CurrentPrice) {
		return models.Asset{}, errs.NewValidationError("quantity and prices must not be negative")
	}
	if _, ok := s.find(id); !ok {
		return models.Asset{}, errs.NewNotFoundError("asset not found")
	}
	s.store.UpdateAsset(id, updates)
	updated, _ := s.find(id)
	return updated, nil
}

func (s *portfolioService) Remove(ctx context.Context, id string) {
	s.store.RemoveAsset(id)
}

// Summary aggregates the whole book: totals by type, cost basis, unrealized
// gain and the best performer by price multiple over cost.
func (s *portfolioService) Summary(ctx context.Context) dto.PortfolioSummary {
	assets := s.store.Assets()

	total := decimal.Zero
	crypto := decimal.Zero
	stocks := decimal.Zero
	basis := decimal.Zero

	for _, a := range assets {
		value := marketValue(a)
		total = total.Add(value)
		basis = basis.Add(decimal.NewFromFloat(a.Quantity).Mul(decimal.NewFromFloat(a.AvgBuyPrice)))
		switch a.Type {
		case models.AssetCrypto:
			crypto = crypto.Add(value)
		case models.AssetStock:
			stocks = stocks.Add(value)
		}
	}

	gain := total.Sub(basis)
	gainPercent := decimal.Zero
	if !basis.IsZero() {
		gainPercent = gain.Div(basis).Mul(decimal.NewFromInt(100))
	}

	summary := dto.PortfolioSummary{
		TotalValue:     total.InexactFloat64(),
		CryptoValue:    crypto.InexactFloat64(),
		StockValue:     stocks.InexactFloat64(),
		TotalCostBasis: basis.InexactFloat64(),
		TotalGain:      gain.InexactFloat64(),
		GainPercent:    gainPercent.InexactFloat64(),
		BestPerformer:  bestPerformer(assets),
		Allocation:     allocation(assets, total),
	}
	return summary
}

func (s *portfolioService) find(id string) (models.Asset, bool) {
	for _, a := range s.store.Assets() {
		if a.ID == id {
			return a, true
		}
	}
	return models.Asset{}, false
}

func position(a models.Asset) dto.AssetPosition {
	value := marketValue(a)
	basis := decimal.NewFromFloat(a.Quantity).Mul(decimal.NewFromFloat(a.AvgBuyPrice))
	gain := value.Sub(basis)
	gainPercent := decimal.Zero
	if !basis.IsZero() {
		gainPercent = gain.Div(basis).Mul(decimal.NewFromInt(100))
	}
	return dto.AssetPosition{
		Asset:       a,
		MarketValue: value.InexactFloat64(),
		CostBasis:   basis.InexactFloat64(),
		Gain:        gain.InexactFloat64(),
		GainPercent: gainPercent.InexactFloat64(),
	}
}

func marketValue(a models.Asset) decimal.Decimal {
	return decimal.NewFromFloat(a.Quantity).Mul(decimal.NewFromFloat(a.CurrentPrice))
}

func bestPerformer(assets []models.Asset) string {
	best := ""
	bestRatio := decimal.Zero
	for _, a := range assets {
		if a.AvgBuyPrice <= 0 {
			continue
		}
		ratio := decimal.NewFromFloat(a.CurrentPrice).Div(decimal.NewFromFloat(a.AvgBuyPrice))
		if best == "" || ratio.GreaterThan(bestRatio) {
			best = a.Symbol
			bestRatio = ratio
		}
	}
	return best
}

func allocation(assets []models.Asset, total decimal.Decimal) []dto.AllocationSlice {
	slices := make([]dto.AllocationSlice, 0, len(assets))
	for _, a := range assets {
		value := marketValue(a)
		if value.IsZero() {
			continue
		}
		percent := decimal.Zero
		if !total.IsZero() {
			percent = value.Div(total).Mul(decimal.NewFromInt(100))
		}
		slices = append(slices, dto.AllocationSlice{
			Symbol:  a.Symbol,
			Name:    a.Name,
			Value:   value.InexactFloat64(),
			Percent: percent.InexactFloat64(),
		})
	}
	return slices
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}
