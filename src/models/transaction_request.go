package models

// Pointer fields distinguish "absent" from zero values so partial updates
// only touch what the client sent.

type CreateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
}

type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Category    *string  `json:"category"`
	Type        *string  `json:"type"`
}

type SeedRequest struct {
	Count *int `json:"count"`
}
