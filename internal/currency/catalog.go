// Package currency holds the static reference catalog of tracked
// currencies. Entries mirror the Central Bank of Myanmar supported list.
package currency

import (
	"slices"

	"todayrates/internal/domain"
)

type Meta struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag"`
}

// fallbackFlag is used for codes outside the catalog.
const fallbackFlag = "💱"

var metas = map[string]Meta{
	"USD": {"USD", "United State Dollar", "$", "🇺🇸"},
	"EUR": {"EUR", "Euro", "€", "🇪🇺"},
	"SGD": {"SGD", "Singapore Dollar", "S$", "🇸🇬"},
	"GBP": {"GBP", "Pound Sterling", "£", "🇬🇧"},
	"CHF": {"CHF", "Swiss Franc", "CHF", "🇨🇭"},
	"JPY": {"JPY", "Japanese Yen", "¥", "🇯🇵"},
	"AUD": {"AUD", "Australian Dollar", "A$", "🇦🇺"},
	"BDT": {"BDT", "Bangladesh Taka", "৳", "🇧🇩"},
	"BND": {"BND", "Brunei Dollar", "B$", "🇧🇳"},
	"KHR": {"KHR", "Cambodian Riel", "៛", "🇰🇭"},
	"CAD": {"CAD", "Canadian Dollar", "C$", "🇨🇦"},
	"CNY": {"CNY", "Chinese Yuan", "¥", "🇨🇳"},
	"HKD": {"HKD", "Hong Kong Dollar", "HK$", "🇭🇰"},
	"INR": {"INR", "Indian Rupee", "₹", "🇮🇳"},
	"IDR": {"IDR", "Indonesian Rupiah", "Rp", "🇮🇩"},
	"KRW": {"KRW", "Korean Won", "₩", "🇰🇷"},
	"LAK": {"LAK", "Lao Kip", "₭", "🇱🇦"},
	"MYR": {"MYR", "Malaysian Ringgit", "RM", "🇲🇾"},
	"NZD": {"NZD", "New Zealand Dollar", "NZ$", "🇳🇿"},
	"PKR": {"PKR", "Pakistani Rupee", "₨", "🇵🇰"},
	"PHP": {"PHP", "Philippines Peso", "₱", "🇵🇭"},
	"LKR": {"LKR", "Sri Lankan Rupee", "Rs", "🇱🇰"},
	"THB": {"THB", "Thai Baht", "฿", "🇹🇭"},
	"VND": {"VND", "Vietnamese Dong", "₫", "🇻🇳"},
	"BRL": {"BRL", "Brazilian Real", "R$", "🇧🇷"},
	"CZK": {"CZK", "Czech Koruna", "Kč", "🇨🇿"},
	"DKK": {"DKK", "Danish Krone", "kr", "🇩🇰"},
	"EGP": {"EGP", "Egyptian Pound", "£", "🇪🇬"},
	"ILS": {"ILS", "Israeli Shekel", "₪", "🇮🇱"},
	"KES": {"KES", "Kenya Shilling", "KSh", "🇰🇪"},
	"KWD": {"KWD", "Kuwaiti Dinar", "KD", "🇰🇼"},
	"NPR": {"NPR", "Nepalese Rupee", "Rs", "🇳🇵"},
	"NOK": {"NOK", "Norwegian Kroner", "kr", "🇳🇴"},
	"RUB": {"RUB", "Russian Rouble", "₽", "🇷🇺"},
	"SAR": {"SAR", "Saudi Arabian Riyal", "SR", "🇸🇦"},
	"RSD": {"RSD", "Serbian Dinar", "din", "🇷🇸"},
	"ZAR": {"ZAR", "South Africa Rand", "R", "🇿🇦"},
	"SEK": {"SEK", "Swedish Krona", "kr", "🇸🇪"},
	"MMK": {"MMK", "Myanmar Kyat", "K", "🇲🇲"},
}

// canonicalOrder is the fixed display ordering, most-traded currencies
// first. It drives both presentation sorting and derivation order.
var canonicalOrder = []string{
	"USD", "EUR", "GBP", "SGD", "THB", "CNY", "MYR", "JPY", "KRW", "INR", "AUD", "CAD",
	"HKD", "CHF", "IDR", "PHP", "VND", "BDT", "LKR", "PKR", "NPR", "BND", "KHR", "LAK",
	"SAR", "KWD", "BRL", "NZD", "ZAR", "RUB", "NOK", "SEK", "DKK", "CZK", "ILS", "EGP",
	"KES", "RSD",
}

var orderIndex = func() map[string]int {
	m := make(map[string]int, len(canonicalOrder))
	for i, c := range canonicalOrder {
		m[c] = i
	}
	return m
}()

// MetaFor returns the catalog entry for code, or a synthetic fallback entry
// for unknown codes. It never fails.
func MetaFor(code string) Meta {
	if m, ok := metas[code]; ok {
		return m
	}
	return Meta{Code: code, Name: code, Symbol: code, Flag: fallbackFlag}
}

// CanonicalOrder returns the fixed display ordering of tracked codes. The
// quote currency itself is not part of the ordering.
func CanonicalOrder() []string {
	return slices.Clone(canonicalOrder)
}

// OrderIndex returns code's position in the canonical ordering; unknown
// codes sort last, after every catalog entry.
func OrderIndex(code string) int {
	if i, ok := orderIndex[code]; ok {
		return i
	}
	return len(canonicalOrder)
}

// Tracked reports whether code is part of the fixed catalog of tracked
// currencies (the quote currency excluded).
func Tracked(code string) bool {
	if code == domain.QuoteCurrency {
		return false
	}
	_, ok := orderIndex[code]
	return ok
}
