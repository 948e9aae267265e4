package insight

import (
	"testing"
	"time"

	"github.com/bhavika1504/my-finance-planner/internal/models"
)

func TestProjection_Shape(t *testing.T) {
	points := Projection(100_000, 10_000, 10)

	if len(points) != 11 {
		t.Fatalf("Projection() returned %d points, want 11", len(points))
	}
	if points[0].Year != 0 || points[0].CurrentCent != 100_000 {
		t.Errorf("points[0] = %+v, want year 0 at starting value", points[0])
	}

	// both paths grow monotonically with positive contributions
	for i := 1; i < len(points); i++ {
		if points[i].CurrentCent <= points[i-1].CurrentCent {
			t.Errorf("current path not growing at year %d", i)
		}
		if points[i].ImprovedCent < points[i].CurrentCent {
			t.Errorf("improved path below current path at year %d", i)
		}
	}

	// year 1: current start + monthly*12*1.08
	if want := int64(100_000 + 10_000*12*1.08); points[1].CurrentCent != want {
		t.Errorf("points[1].CurrentCent = %d, want %d", points[1].CurrentCent, want)
	}
}

func TestProjection_DefaultYears(t *testing.T) {
	if got := len(Projection(0, 100, 0)); got != 11 {
		t.Errorf("Projection(years=0) returned %d points, want 11", got)
	}
}

func TestFuturePersona_Thresholds(t *testing.T) {
	testCases := []struct {
		name        string
		currentCent int64
		wantTitle   string
		wantMood    string
	}{
		{"huge savings", 20_000_000 * 100, "The Freedom Architect", "happy"},
		{"comfortable", 6_000_000 * 100, "The Secure Planner", "happy"},
		{"some savings", 3_000_000 * 100, "The Cautious Saver", "neutral"},
		{"nothing", 0, "The Stressed Survivor", "worried"},
	}

	for _, tc := range testCases {
		p := FuturePersona(tc.currentCent, 0, 10)
		if p.Title != tc.wantTitle {
			t.Errorf("%s: title = %q, want %q", tc.name, p.Title, tc.wantTitle)
		}
		if p.Mood != tc.wantMood {
			t.Errorf("%s: mood = %q, want %q", tc.name, p.Mood, tc.wantMood)
		}
	}
}

func TestFuturePersona_LinearEstimate(t *testing.T) {
	// the persona tiers use current + monthly*12*years*1.5, not the
	// compounded projection path
	testCases := []struct {
		name        string
		currentCent int64
		monthlyCent int64
		years       int
		wantTitle   string
	}{
		// 0 + 15000*12*10*1.5 = 2.7M, just over the 2M tier
		{"steady saver from zero", 0, 15_000_00, 10, "The Cautious Saver"},
		// 0 + 10000*12*10*1.5 = 1.8M, just under the 2M tier
		{"under the lowest tier", 0, 10_000_00, 10, "The Stressed Survivor"},
		// 1M + 25000*12*10*1.5 = 5.5M, second tier
		{"head start", 1_000_000_00, 25_000_00, 10, "The Secure Planner"},
		// 0 + 30000*12*20*1.5 = 10.8M over a longer horizon
		{"long horizon", 0, 30_000_00, 20, "The Freedom Architect"},
	}

	for _, tc := range testCases {
		p := FuturePersona(tc.currentCent, tc.monthlyCent, tc.years)
		if p.Title != tc.wantTitle {
			t.Errorf("%s: FuturePersona(%d, %d, %d) = %q, want %q",
				tc.name, tc.currentCent, tc.monthlyCent, tc.years, p.Title, tc.wantTitle)
		}
	}
}

func TestFuturePersona_DefaultYears(t *testing.T) {
	// years <= 0 falls back to the 10-year horizon
	if got, want := FuturePersona(0, 15_000_00, 0), FuturePersona(0, 15_000_00, 10); got != want {
		t.Errorf("FuturePersona(years=0) = %+v, want %+v", got, want)
	}
}

func monthTx(now time.Time, cent int64) models.Transaction {
	return models.Transaction{AmountCent: cent, CreatedAt: now}
}

func TestMonthlyAlerts_Overspending(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		monthTx(now, 50_000_00),
		monthTx(now, -80_000_00),
	}

	alerts := MonthlyAlerts(txs, now)

	var found bool
	for _, a := range alerts {
		if a.Title == "Overspending Alert" && a.Type == "warning" {
			found = true
		}
	}
	if !found {
		t.Errorf("MonthlyAlerts() = %+v, want Overspending Alert", alerts)
	}
}

func TestMonthlyAlerts_SavingsRate(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	// saving 50% -> success alert
	alerts := MonthlyAlerts([]models.Transaction{
		monthTx(now, 100_000_00),
		monthTx(now, -50_000_00),
	}, now)
	if len(alerts) != 1 || alerts[0].Type != "success" {
		t.Errorf("high savings rate alerts = %+v, want one success", alerts)
	}

	// saving 5% -> warning
	alerts = MonthlyAlerts([]models.Transaction{
		monthTx(now, 100_000_00),
		monthTx(now, -95_000_00),
	}, now)
	if len(alerts) != 1 || alerts[0].Title != "Low Savings Rate" {
		t.Errorf("low savings rate alerts = %+v, want Low Savings Rate", alerts)
	}
}

func TestMonthlyAlerts_IgnoresOtherMonths(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	lastMonth := now.AddDate(0, -1, 0)

	alerts := MonthlyAlerts([]models.Transaction{
		monthTx(lastMonth, 100_000_00),
		monthTx(lastMonth, -95_000_00),
	}, now)

	if len(alerts) != 1 || alerts[0].Title != "All Looks Good" {
		t.Errorf("alerts = %+v, want only the fallback", alerts)
	}
}

func TestMonthlyAlerts_Fallback(t *testing.T) {
	now := time.Now()
	alerts := MonthlyAlerts(nil, now)
	if len(alerts) != 1 || alerts[0].Type != "info" {
		t.Errorf("MonthlyAlerts(nil) = %+v, want single info fallback", alerts)
	}
}
