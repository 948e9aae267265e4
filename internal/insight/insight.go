// Package insight computes the "future savings" projection, the future
// persona and the monthly spending alerts shown on the dashboard.
package insight

import (
	"math"
	"time"

	"github.com/bhavika1504/my-finance-planner/internal/models"
)

// yearlyGrowth is the rough compounding factor applied to each year of
// contributions; improvedFactor is the "what if you saved 50% more" path.
const (
	yearlyGrowth   = 1.08
	improvedFactor = 1.5

	// roughCompounding is the flat multiplier of the persona's linear
	// future-value estimate
	roughCompounding = 1.5

	// persona thresholds on projected future value, in cents
	freedomThresholdCent  = 10_000_000 * 100
	secureThresholdCent   = 5_000_000 * 100
	cautiousThresholdCent = 2_000_000 * 100
)

// Point is one year of the projection, both the current path and the
// improved (higher monthly savings) path. Amounts in cents.
type Point struct {
	Year         int   `json:"year"`
	CurrentCent  int64 `json:"current_cent"`
	ImprovedCent int64 `json:"improved_cent"`
}

// Projection builds a year-by-year savings projection starting from
// currentCent with monthlyCent contributed per month. Point 0 is the
// starting position.
func Projection(currentCent, monthlyCent int64, years int) []Point {
	if years <= 0 {
		years = 10
	}

	current := float64(currentCent)
	improved := float64(currentCent)
	improvedMonthly := float64(monthlyCent) * improvedFactor

	points := make([]Point, 0, years+1)
	for year := 0; year <= years; year++ {
		points = append(points, Point{
			Year:         year,
			CurrentCent:  int64(math.Round(current)),
			ImprovedCent: int64(math.Round(improved)),
		})

		current += float64(monthlyCent) * 12 * yearlyGrowth
		improved += improvedMonthly * 12 * yearlyGrowth
	}

	return points
}

// Persona describes the projected future self.
type Persona struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
	Mood        string `json:"mood"` // happy / neutral / worried
}

// FuturePersona picks a persona from a rough future value:
// current + monthly*12*years*1.5. This is deliberately cruder than
// Projection's year-by-year path; the persona tiers are calibrated
// against this linear estimate, so the two must not be mixed.
func FuturePersona(currentCent, monthlyCent int64, years int) Persona {
	if years <= 0 {
		years = 10
	}
	futureValue := currentCent + int64(math.Round(float64(monthlyCent)*12*float64(years)*roughCompounding))

	switch {
	case futureValue > freedomThresholdCent:
		return Persona{
			Title:       "The Freedom Architect",
			Description: "You are living life on your own terms. Your early investments have compounded into a fortress of financial security.",
			Advice:      "You're on a fantastic path. Consider diversifying into real estate to preserve wealth.",
			Mood:        "happy",
		}
	case futureValue > secureThresholdCent:
		return Persona{
			Title:       "The Secure Planner",
			Description: "You have a comfortable safety net. Major life events are covered, but you still budget carefully for luxury items.",
			Advice:      "You're doing well. A little more aggression in equity could push you to the next level.",
			Mood:        "happy",
		}
	case futureValue > cautiousThresholdCent:
		return Persona{
			Title:       "The Cautious Saver",
			Description: "You have some savings, but inflation is a concern. A major health crisis or job loss could be stressful.",
			Advice:      "Try to increase your monthly savings by just 10%. It makes a huge difference over a decade.",
			Mood:        "neutral",
		}
	default:
		return Persona{
			Title:       "The Stressed Survivor",
			Description: "Financial anxiety is a constant companion. Retirement seems like a distant, impossible dream.",
			Advice:      "It's not too late to start small. Focus on clearing high-interest debt first.",
			Mood:        "worried",
		}
	}
}

// Alert is a generated dashboard notification.
type Alert struct {
	Type    string `json:"type"` // warning / success / info
	Title   string `json:"title"`
	Message string `json:"message"`
}

// savings-rate bounds for the alert rules
const (
	lowSavingsRate  = 0.10
	highSavingsRate = 0.30
)

// MonthlyAlerts inspects the transactions of now's calendar month and
// produces overspending / savings-rate alerts. Inflow is the sum of
// positive amounts, outflow the absolute sum of negative ones.
func MonthlyAlerts(txs []models.Transaction, now time.Time) []Alert {
	var incomeCent, expenseCent int64
	for _, tx := range txs {
		if tx.CreatedAt.Year() != now.Year() || tx.CreatedAt.Month() != now.Month() {
			continue
		}
		if tx.AmountCent >= 0 {
			incomeCent += tx.AmountCent
		} else {
			expenseCent += -tx.AmountCent
		}
	}

	var alerts []Alert

	if expenseCent > incomeCent && incomeCent > 0 {
		alerts = append(alerts, Alert{
			Type:    "warning",
			Title:   "Overspending Alert",
			Message: "You've spent more than you earned this month.",
		})
	}

	if incomeCent > 0 {
		savingsRate := float64(incomeCent-expenseCent) / float64(incomeCent)
		if savingsRate < lowSavingsRate {
			alerts = append(alerts, Alert{
				Type:    "warning",
				Title:   "Low Savings Rate",
				Message: "You're saving less than 10% of your income. Aim for at least 20%.",
			})
		} else if savingsRate > highSavingsRate {
			alerts = append(alerts, Alert{
				Type:    "success",
				Title:   "Great Savings Rate!",
				Message: "You're saving more than 30% of your income. Keep it up.",
			})
		}
	}

	if len(alerts) == 0 {
		alerts = append(alerts, Alert{
			Type:    "info",
			Title:   "All Looks Good",
			Message: "Your spending is within limits this month. Keep tracking!",
		})
	}

	return alerts
}
