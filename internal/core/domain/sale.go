package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a single order from the sales ledger.
type Sale struct {
	OrderID         string
	OrderDate       time.Time
	Country         string
	ProductCategory string
	Revenue         decimal.Decimal
}
