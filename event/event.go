// Package event annotates months in the displayed series range with the US
// holidays they contain. Visitor counts are holiday-sensitive, so the
// dashboard surfaces these months next to the forecast charts. Display only;
// models and metrics never see them.
package event

import (
	"errors"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var ErrStartAfterEnd = errors.New("range start is after end")

// MonthMark names one holiday observed within one calendar month.
type MonthMark struct {
	Month   time.Time `json:"month"`
	Holiday string    `json:"holiday"`
}

// majorHolidays are the visitor-relevant US holidays checked per year.
var majorHolidays = []*cal.Holiday{
	us.NewYear,
	us.MemorialDay,
	us.IndependenceDay,
	us.LaborDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// HolidayMonths returns one mark per (month, holiday) pair for every major US
// holiday observed between start and end inclusive, in chronological order.
func HolidayMonths(start, end time.Time) ([]MonthMark, error) {
	if start.After(end) {
		return nil, ErrStartAfterEnd
	}

	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	var marks []MonthMark
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		for _, hol := range majorHolidays {
			actual, _ := hol.Calc(month.Year())
			if actual.Year() == month.Year() && actual.Month() == month.Month() {
				marks = append(marks, MonthMark{
					Month:   month,
					Holiday: hol.Name,
				})
			}
		}
	}
	return marks, nil
}
