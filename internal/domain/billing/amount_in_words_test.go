package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mobileshop/pos-api/internal/domain/billing"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAmountInWords_Zero(t *testing.T) {
	assert.Equal(t, "zero rupees only", billing.AmountInWords(amt("0")))
}

func TestAmountInWords_SingularRupee(t *testing.T) {
	assert.Equal(t, "one rupee only", billing.AmountInWords(amt("1")))
}

func TestAmountInWords_SmallNumbers(t *testing.T) {
	assert.Equal(t, "seven rupees only", billing.AmountInWords(amt("7")))
	assert.Equal(t, "thirteen rupees only", billing.AmountInWords(amt("13")))
	assert.Equal(t, "forty two rupees only", billing.AmountInWords(amt("42")))
	assert.Equal(t, "two hundred five rupees only", billing.AmountInWords(amt("205")))
}

func TestAmountInWords_Paise(t *testing.T) {
	assert.Equal(t, "ten rupees and fifty paise only", billing.AmountInWords(amt("10.50")))
	assert.Equal(t, "zero rupees and five paise only", billing.AmountInWords(amt("0.05")))
}

func TestAmountInWords_PaiseRoundsIntoNextRupee(t *testing.T) {
	// .995 and above rounds to 100 paise, which rolls into the rupee part
	assert.Equal(t, "two rupees only", billing.AmountInWords(amt("1.995")))
}

func TestAmountInWords_IndianScale(t *testing.T) {
	assert.Equal(t, "one thousand rupees only", billing.AmountInWords(amt("1000")))
	assert.Equal(t, "one lakh rupees only", billing.AmountInWords(amt("100000")))
	assert.Equal(t, "one crore rupees only", billing.AmountInWords(amt("10000000")))
	assert.Equal(t,
		"twelve lakh thirty four thousand five hundred sixty seven rupees only",
		billing.AmountInWords(amt("1234567")))
}

func TestAmountInWords_BillTotal(t *testing.T) {
	// typical VAT bill total: 2 x 9999 + 5% VAT
	assert.Equal(t,
		"twenty thousand nine hundred ninety seven rupees and ninety paise only",
		billing.AmountInWords(amt("20997.90")))
}
