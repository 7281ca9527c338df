package places

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-trip-planner/internal/trip"
)

func TestDescribeFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head></head><body>
			<script>var noise = true;</script>
			<nav>menu menu menu</nav>
			<p>Short.</p>
			<p>The city museum houses over four thousand artefacts spanning twelve centuries of regional history and craft.</p>
		</body></html>`))
	}))
	defer server.Close()

	e := NewEnricher()
	desc, err := e.DescribeFromURL(server.URL)
	if err != nil {
		t.Fatalf("DescribeFromURL failed: %v", err)
	}
	if desc == "" || desc == "Short." {
		t.Errorf("expected the long paragraph, got %q", desc)
	}
}

func TestDescribeFromURLPrefersMetaDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<meta name="description" content="A hilltop viewpoint popular at dusk.">
		</head><body><p>Some other long enough paragraph of page body text for fallback.</p></body></html>`))
	}))
	defer server.Close()

	e := NewEnricher()
	desc, err := e.DescribeFromURL(server.URL)
	if err != nil {
		t.Fatalf("DescribeFromURL failed: %v", err)
	}
	if desc != "A hilltop viewpoint popular at dusk." {
		t.Errorf("expected meta description, got %q", desc)
	}
}

func TestEnrichSkipsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	e := NewEnricher()
	pois := []trip.POI{
		{ID: "a", Description: "already set"},
		{ID: "b"},
	}
	out := e.Enrich(pois, map[string]string{"b": server.URL})
	if out[0].Description != "already set" {
		t.Errorf("existing description overwritten: %q", out[0].Description)
	}
	if out[1].Description != "" {
		t.Errorf("expected empty description after fetch failure, got %q", out[1].Description)
	}
}
