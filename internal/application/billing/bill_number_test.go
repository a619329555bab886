package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillNumberPrefix_UTC(t *testing.T) {
	// 23:30 in UTC+5:45 is still the previous day in UTC
	loc := time.FixedZone("NPT", 5*3600+45*60)
	local := time.Date(2026, 9, 2, 1, 30, 0, 0, loc)
	assert.Equal(t, "B20260901", billNumberPrefix(local))
}

func TestNextBillNumber_FirstOfDay(t *testing.T) {
	assert.Equal(t, "B202609010001", nextBillNumber("B20260901", ""))
}

func TestNextBillNumber_Increments(t *testing.T) {
	assert.Equal(t, "B202609010002", nextBillNumber("B20260901", "B202609010001"))
	assert.Equal(t, "B202609010100", nextBillNumber("B20260901", "B202609010099"))
}

func TestNextBillNumber_WidensPast9999(t *testing.T) {
	assert.Equal(t, "B2026090110000", nextBillNumber("B20260901", "B202609019999"))
	assert.Equal(t, "B2026090110001", nextBillNumber("B20260901", "B2026090110000"))
}

func TestNextBillNumber_ForeignPrefixRestartsAtOne(t *testing.T) {
	// last number from another day never leaks into today's sequence
	assert.Equal(t, "B202609020001", nextBillNumber("B20260902", "B202609014321"))
}

func TestNextBillNumber_Monotonic(t *testing.T) {
	prefix := "B20260901"
	last := ""
	seen := make(map[string]bool)
	for i := 0; i < 10050; i++ {
		next := nextBillNumber(prefix, last)
		assert.False(t, seen[next], "duplicate number %s", next)
		seen[next] = true
		last = next
	}
	assert.Equal(t, "B2026090110050", last)
}
