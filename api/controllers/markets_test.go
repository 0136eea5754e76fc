package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/projectscope/projectscope-backend/internal/markets"
)

func marketsTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := seededStore(t)
	svc := markets.NewService(store)

	r := chi.NewRouter()
	r.Get("/api/market-indicators", MarketIndicators(svc, nil))
	r.Get("/api/trending-sectors", TrendingSectors(svc, nil))
	r.Get("/api/filter-options", FilterOptions(store, nil))
	r.Get("/api/cities/{country}", Cities(store, nil))
	r.Get("/api/districts/{country}/{city}", Districts(store, nil))
	return r
}

func TestMarketIndicatorsEndpoint(t *testing.T) {
	router := marketsTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/market-indicators", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Indicators []markets.Indicator `json:"indicators"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Indicators) == 0 {
		t.Fatal("expected indicators")
	}
	for _, ind := range envelope.Data.Indicators {
		if !ind.IsActive {
			t.Fatalf("inactive indicator %d leaked", ind.ID)
		}
	}
}

func TestTrendingSectorsEndpoint(t *testing.T) {
	router := marketsTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/trending-sectors", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Sectors []markets.TrendingSector `json:"sectors"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Sectors) != 3 {
		t.Fatalf("expected 3 sectors got %d", len(envelope.Data.Sectors))
	}
}

func TestFilterOptionsEndpoint(t *testing.T) {
	router := marketsTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/filter-options", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Countries []string            `json:"countries"`
			Statuses  []string            `json:"statuses"`
			Hierarchy map[string][]string `json:"countryToCities"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Countries) != 2 {
		t.Fatalf("expected 2 countries got %v", envelope.Data.Countries)
	}
	if len(envelope.Data.Statuses) == 0 || len(envelope.Data.Hierarchy) == 0 {
		t.Fatal("expected statuses and hierarchy tables")
	}
}

func TestCitiesEndpointHandlesEscapedCountry(t *testing.T) {
	router := marketsTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cities/Saudi%20Arabia", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Cities []string `json:"cities"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Cities) != 2 {
		t.Fatalf("expected [Jeddah Riyadh] got %v", envelope.Data.Cities)
	}
}

func TestDistrictsEndpointUnknownPairIsEmpty(t *testing.T) {
	router := marketsTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/districts/Qatar/Doha", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Districts []string `json:"districts"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Districts) != 0 {
		t.Fatalf("expected empty list got %v", envelope.Data.Districts)
	}
}
