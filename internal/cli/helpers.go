package cli

import (
	"fmt"
	"time"

	"paysheet/internal/timesheet"
)

const dateLayout = "2006-01-02"

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation(dateLayout, dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func resolveOrder(byFlag string) (timesheet.OrderBy, error) {
	switch byFlag {
	case "date", "":
		return timesheet.OrderByDate, nil
	case "week":
		return timesheet.OrderByWeek, nil
	default:
		return timesheet.OrderByDate, fmt.Errorf("unknown sort order %q (want date or week)", byFlag)
	}
}
