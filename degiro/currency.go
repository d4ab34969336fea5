package degiro

import (
	"sync"

	"github.com/Rhymond/go-money"
)

var registerCurrencies sync.Once

// RegisterCurrencies registers the non-standard currency units the export
// uses before any parsing happens. British pence ("GBX") is not an ISO 4217
// code: it is registered with zero decimal places and no conversion factor.
// Calling this more than once is a no-op.
func RegisterCurrencies() {
	registerCurrencies.Do(func() {
		money.AddCurrency("GBX", "GBX", "1 $", ".", ",", 0)
	})
}
