package config

// DefaultCurrencySymbols returns the builtin display symbol table. Codes not
// listed here render with the code itself. The map is a fresh copy so
// callers may layer overrides on top without touching the defaults.
func DefaultCurrencySymbols() map[string]string {
	defaults := map[string]string{
		// Major currencies
		"USD": "$", "EUR": "€", "JPY": "¥", "GBP": "£", "AUD": "A$",
		"CAD": "C$", "CHF": "Fr", "CNY": "¥", "HKD": "HK$", "NZD": "NZ$",

		// Asia
		"IDR": "Rp", "SGD": "S$", "MYR": "RM", "THB": "฿", "PHP": "₱",
		"VND": "₫", "KRW": "₩", "INR": "₹", "BDT": "৳", "LKR": "Rs",
		"MMK": "K", "KHR": "៛", "LAK": "₭", "PKR": "Rs", "ILS": "₪",
		"SAR": "﷼", "AED": "د.إ", "QAR": "﷼", "KWD": "د.ك", "OMR": "﷼",
		"BHD": "ب.د", "JOD": "د.أ", "TRY": "₺",

		// Europe (non-euro included)
		"DKK": "kr", "NOK": "kr", "SEK": "kr", "PLN": "zł", "CZK": "Kč",
		"HUF": "Ft", "RON": "lei", "BGN": "лв", "RUB": "₽", "UAH": "₴",
		"ISK": "kr",

		// Americas
		"MXN": "$", "BRL": "R$", "ARS": "$", "CLP": "$", "COP": "$",
		"PEN": "S/", "DOP": "RD$", "CRC": "₡", "GTQ": "Q", "TTD": "TT$",

		// Africa
		"ZAR": "R", "NGN": "₦", "EGP": "£", "KES": "KSh", "TZS": "TSh",
		"UGX": "USh", "GHS": "₵", "MAD": "د.م.", "TND": "د.ت", "ETB": "Br",
		"XAF": "FCFA", "XOF": "CFA", "BWP": "P",

		// Oceania / Pacific
		"FJD": "FJ$", "PGK": "K", "WST": "T", "TOP": "T$", "VUV": "Vt",
	}

	out := make(map[string]string, len(defaults))
	for code, symbol := range defaults {
		out[code] = symbol
	}
	return out
}
