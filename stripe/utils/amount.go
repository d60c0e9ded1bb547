package utils

import (
	"fmt"
	"math"
	"strings"
)

func ToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FormatAmount renders a minor-units amount as "12.34 USD".
func FormatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(amount)/100, strings.ToUpper(currency))
}
