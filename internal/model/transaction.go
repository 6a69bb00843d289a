package model

import "time"

// Transaction represents a single transaction as returned by the remote
// budgeting service. Amounts are in milliunits: positive values are inflows,
// negative values are outflows. The view-state engine only ever reads these
// records; it never mutates them.
type Transaction struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Amount       int64     `json:"amount"`
	Memo         string    `json:"memo,omitempty"`
	Cleared      string    `json:"cleared"`
	Approved     bool      `json:"approved"`
	FlagColor    string    `json:"flagColor,omitempty"`
	AccountID    string    `json:"accountId"`
	AccountName  string    `json:"accountName"`
	PayeeID      string    `json:"payeeId,omitempty"`
	PayeeName    string    `json:"payeeName,omitempty"`
	CategoryID   string    `json:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName,omitempty"`
	Deleted      bool      `json:"deleted"`
}

// Group is a bucket of transactions sharing one grouping-key value.
// Title is the key value itself, empty when the record is missing the field.
type Group struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Items []Transaction `json:"items"`
}
