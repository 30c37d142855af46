package dto

type SessionRequest struct {
	IDToken string `json:"idToken"`
}

type SessionResponse struct {
	UID string `json:"uid"`
}

type UpdateCurrencyRequest struct {
	Currency string `json:"currency"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}
