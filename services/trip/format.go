package trip

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// formatAmount renders an amount the way travelers read prices, e.g. ₹15,100.
func formatAmount(currency string, amount float64) string {
	prefix, ok := currencySymbols[currency]
	if !ok {
		prefix = currency + " "
	}
	cents := int64(math.Round(amount * 100))
	if cents%100 == 0 {
		return prefix + humanize.Comma(cents/100)
	}
	return fmt.Sprintf("%s%s.%02d", prefix, humanize.Comma(cents/100), cents%100)
}
