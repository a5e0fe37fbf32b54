package backup

import (
	"fmt"
	"time"
)

// FileName returns the conventional export file name for a backup kind,
// e.g. finance_all_20240115_0930.json.
func FileName(kind Kind, now time.Time) string {
	return fmt.Sprintf("finance_%s_%s.json", kind, now.Format("20060102_1504"))
}
