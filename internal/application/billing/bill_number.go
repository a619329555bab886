package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// billNumberSeqWidth is the minimum width of the daily sequence suffix. The
// suffix widens past 9999 instead of wrapping, so one busy day can never
// produce a duplicate or rejected number.
const billNumberSeqWidth = 4

// billNumberPrefix returns the date-scoped prefix for t, e.g. "B20240523".
// Days are bounded in UTC.
func billNumberPrefix(t time.Time) string {
	return "B" + t.UTC().Format("20060102")
}

// nextBillNumber derives the successor of last within prefix. last is the
// highest existing number for the day ("" when the day has no bills yet); the
// whole suffix after the prefix is parsed, so widened numbers keep counting.
func nextBillNumber(prefix, last string) string {
	seq := 1
	if strings.HasPrefix(last, prefix) {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, billNumberSeqWidth, seq)
}
