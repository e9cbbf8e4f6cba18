package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amanahworks/folio/internal/config"
)

func TestRunCalculatorLease(t *testing.T) {
	_, engine := newTestServer(t, config.Config{}, &fakeAuthService{})

	rec := doJSON(t, engine, http.MethodPost, "/api/calculators/lease",
		`{"principal":120000,"annual_rate_percent":6,"term_months":12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CalculatorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Variant != "lease" {
		t.Fatalf("expected lease variant, got %q", resp.Variant)
	}
	monthly, ok := resp.Summary["monthly_payment"].(float64)
	if !ok || monthly <= 10000 {
		t.Fatalf("expected monthly payment above principal/n, got %v", resp.Summary["monthly_payment"])
	}
	if len(resp.Schedule.Periods) != 12 {
		t.Fatalf("expected 12 periods, got %d", len(resp.Schedule.Periods))
	}
}

func TestRunCalculatorUnknownVariant(t *testing.T) {
	_, engine := newTestServer(t, config.Config{}, &fakeAuthService{})

	rec := doJSON(t, engine, http.MethodPost, "/api/calculators/compound-interest",
		`{"principal":1000,"annual_rate_percent":5,"term_months":12}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRunCalculatorOutOfBounds(t *testing.T) {
	_, engine := newTestServer(t, config.Config{}, &fakeAuthService{})

	// Default bounds cap the term at 480 months.
	rec := doJSON(t, engine, http.MethodPost, "/api/calculators/lease",
		`{"principal":1000,"annual_rate_percent":5,"term_months":1200}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRunCalculatorRejectsNegativePrincipal(t *testing.T) {
	_, engine := newTestServer(t, config.Config{}, &fakeAuthService{})

	rec := doJSON(t, engine, http.MethodPost, "/api/calculators/markup",
		`{"principal":-5,"markup_percent":10,"term_months":6}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRunCalculatorMarkupUsesMarkupPercent(t *testing.T) {
	_, engine := newTestServer(t, config.Config{}, &fakeAuthService{})

	// The markup variant reads markup_percent; a stray annual_rate_percent
	// must not leak into the flat markup.
	rec := doJSON(t, engine, http.MethodPost, "/api/calculators/markup",
		`{"principal":1000,"markup_percent":10,"annual_rate_percent":99,"term_months":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CalculatorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if total, _ := resp.Summary["total_payable"].(float64); total != 1100 {
		t.Fatalf("expected total 1100 from the flat markup, got %v", resp.Summary["total_payable"])
	}
}
