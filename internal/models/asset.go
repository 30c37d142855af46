package models

type AssetType string

const (
	AssetCrypto AssetType = "crypto"
	AssetStock  AssetType = "stock"
)

func (t AssetType) Valid() bool {
	return t == AssetCrypto || t == AssetStock
}

type Asset struct {
	ID           string    `firestore:"id" json:"id"`
	Symbol       string    `firestore:"symbol" json:"symbol"`
	Name         string    `firestore:"name" json:"name"`
	Type         AssetType `firestore:"type" json:"type"`
	Quantity     float64   `firestore:"quantity" json:"quantity"`
	AvgBuyPrice  float64   `firestore:"avgBuyPrice" json:"avgBuyPrice"`   // cost basis per unit
	CurrentPrice float64   `firestore:"currentPrice" json:"currentPrice"` // manually updated
}
