package payment

import "github.com/devservices/devshop/internal/domain"

// banks is the fixed set of supported payment banks.
var banks = map[string]domain.Bank{
	"sovcombank": {Name: "Совкомбанк", Icon: "🏦"},
	"sber":       {Name: "Сбер", Icon: "💚"},
	"vtb":        {Name: "ВТБ", Icon: "🔵"},
	"tbank":      {Name: "Т-Банк", Icon: "⚡"},
}

// Banks returns the full bank set keyed by bank identifier.
func Banks() map[string]domain.Bank {
	return banks
}

// QRURL resolves the static payment link for an exact (bank, amount)
// pair. There is no interpolation or nearest-amount fallback: an
// unlisted amount for a known bank misses the same way an unknown bank
// does.
func QRURL(bank string, amount int) (string, bool) {
	amounts, ok := qrCodes[bank]
	if !ok {
		return "", false
	}
	url, ok := amounts[amount]
	return url, ok
}
