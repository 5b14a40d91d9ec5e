package models

type CreateBudgetRequest struct {
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
	Month    string   `json:"month"`
	Year     *int     `json:"year"`
}

type UpdateBudgetRequest struct {
	Amount *float64 `json:"amount"`
}
