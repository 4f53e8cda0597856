package queries

import (
	"time"

	"takeout/internal/pkg/errs"
)

// Reporting queries bucket by calendar day in the server's local time zone.
const maxReportDays = 366

// validateReportRange checks a begin/end date pair shared by all reports.
func validateReportRange(begin, end time.Time) error {
	if begin.IsZero() {
		return errs.NewValueIsRequiredError("begin")
	}
	if end.IsZero() {
		return errs.NewValueIsRequiredError("end")
	}
	if end.Before(begin) {
		return errs.NewValueIsInvalidError("report range")
	}
	if days := int(endOfDay(end).Sub(startOfDay(begin)).Hours()/24) + 1; days > maxReportDays {
		return errs.NewValueIsOutOfRangeError("report range days", days, 1, maxReportDays)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// reportDays lists the day buckets of the inclusive [begin, end] range.
func reportDays(begin, end time.Time) []time.Time {
	days := make([]time.Time, 0)
	for day := startOfDay(begin); !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// reportDateFormat is the bucket label format of every report row.
const reportDateFormat = "2006-01-02"
