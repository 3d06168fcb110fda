package service

import "github.com/shopspring/decimal"

// round rounds half away from zero to the given number of decimal places.
func round(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// roundTo2Decimals redondea un monto a centavos
func roundTo2Decimals(value float64) float64 {
	return round(value, currencyDecimals)
}
