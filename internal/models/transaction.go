package models

type Transaction struct {
	ID       int     `json:"id"` // assigned by the ledger on append
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"` // negative is a debit
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
	Date     string  `json:"date"` // YYYY-MM-DD
}
