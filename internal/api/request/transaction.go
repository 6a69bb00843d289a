package request

// CreateTransactionRequest is the payload for creating a transaction.
// Amount is a currency string ("-12.50"); it is converted to milliunits
// during validation so callers never deal in floats.
type CreateTransactionRequest struct {
	AccountID  string `json:"accountId"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	PayeeName  string `json:"payeeName"`
	CategoryID string `json:"categoryId,omitempty"`
	Memo       string `json:"memo,omitempty"`
	FlagColor  string `json:"flagColor,omitempty"`
	Cleared    bool   `json:"cleared"`
}

// UpdateTransactionRequest is the payload for updating a transaction.
// The remote service replaces the record, so the same fields are required
// as for creation.
type UpdateTransactionRequest struct {
	AccountID  string `json:"accountId"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	PayeeName  string `json:"payeeName"`
	CategoryID string `json:"categoryId,omitempty"`
	Memo       string `json:"memo,omitempty"`
	FlagColor  string `json:"flagColor,omitempty"`
	Cleared    bool   `json:"cleared"`
}
