package transfer

import (
	"github.com/shopspring/decimal"

	"payvault/internal/models"
)

// Receipt reports a committed transfer with post-transfer snapshots of both
// accounts.
type Receipt struct {
	From   models.Account
	To     models.Account
	Amount decimal.Decimal
}
