package models

import "gorm.io/gorm"

// CheckoutReceipt records one successful checkout, written in the
// same transaction as the enrollments it paid for.
type CheckoutReceipt struct {
	gorm.Model
	ReceiptNo     string  `json:"receiptNo" gorm:"uniqueIndex;not null"`
	UserID        uint    `json:"userId" gorm:"index;not null"`
	ItemCount     int     `json:"itemCount"`
	Total         float64 `json:"total"`
	OriginalTotal float64 `json:"originalTotal"`
}
