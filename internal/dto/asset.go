package dto

import "github.com/Leonardo777l/Finanzas-Leo/internal/models"

type CreateAssetRequest struct {
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Type         models.AssetType `json:"type"`
	Quantity     float64          `json:"quantity"`
	AvgBuyPrice  float64          `json:"avgBuyPrice"`
	CurrentPrice float64          `json:"currentPrice"`
}

// AssetUpdates carries a partial update; nil fields are left untouched.
type AssetUpdates struct {
	Symbol       *string           `json:"symbol,omitempty"`
	Name         *string           `json:"name,omitempty"`
	Type         *models.AssetType `json:"type,omitempty"`
	Quantity     *float64          `json:"quantity,omitempty"`
	AvgBuyPrice  *float64          `json:"avgBuyPrice,omitempty"`
	CurrentPrice *float64          `json:"currentPrice,omitempty"`
}

type AssetPosition struct {
	models.Asset
	MarketValue float64 `json:"marketValue"`
	CostBasis   float64 `json:"costBasis"`
	Gain        float64 `json:"gain"`
	GainPercent float64 `json:"gainPercent"`
}

type AllocationSlice struct {
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type PortfolioSummary struct {
	TotalValue     float64           `json:"totalValue"`
	CryptoValue    float64           `json:"cryptoValue"`
	StockValue     float64           `json:"stockValue"`
	TotalCostBasis float64           `json:"totalCostBasis"`
	TotalGain      float64           `json:"totalGain"`
	GainPercent    float64           `json:"gainPercent"`
	BestPerformer  string            `json:"bestPerformer,omitempty"`
	Allocation     []AllocationSlice `json:"allocation"`
}
