package budgeting

import (
	"fmt"
	"regexp"
	"time"

	"github.com/aristath/finwell/internal/domain"
)

const dateLayout = "2006-01-02"

var salaryPattern = regexp.MustCompile(`(?i)salary`)

// MonthLabel renders the month offset months after now as "October 2025"
func MonthLabel(now time.Time, offset int) string {
	first := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())
	return fmt.Sprintf("%s %d", first.Month(), first.Year())
}

// AddMonths adds n calendar months, clamping the day to the end of the
// target month (Jan 31 + 1 month is Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// PayDatePrediction is one expected pay date, with the following month's
// date predicted for salary payments that land in the current month.
type PayDatePrediction struct {
	Category      string `json:"category"`
	Date          string `json:"date"`
	Salary        bool   `json:"salary"`
	PredictedNext string `json:"predictedNext,omitempty"`
}

// PredictPayDates walks the pay dates in order. Dates that cannot be parsed
// are reported as given.
func PredictPayDates(payDates []domain.PayDate, now time.Time) []PayDatePrediction {
	out := make([]PayDatePrediction, 0, len(payDates))
	for _, pd := range payDates {
		prediction := PayDatePrediction{Category: pd.Category, Date: pd.Date}

		parsed, err := time.ParseInLocation(dateLayout, pd.Date, now.Location())
		if err == nil {
			prediction.Date = parsed.Format(dateLayout)
			inCurrentMonth := parsed.Year() == now.Year() && parsed.Month() == now.Month()
			if inCurrentMonth && salaryPattern.MatchString(pd.Category) {
				prediction.Salary = true
				prediction.PredictedNext = AddMonths(parsed, 1).Format(dateLayout)
			}
		}

		out = append(out, prediction)
	}
	return out
}
