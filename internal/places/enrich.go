package places

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"ai-trip-planner/internal/trip"

	"github.com/PuerkitoBio/goquery"
)

const maxDescriptionChars = 400

// Enricher fetches a place's web page and pulls a short description from it.
// Enrichment is best-effort: callers treat failures as "no extra detail".
type Enricher struct {
	httpClient *http.Client
}

// NewEnricher creates an Enricher with a bounded request timeout.
func NewEnricher() *Enricher {
	return &Enricher{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// DescribeFromURL fetches the page and extracts the first meaningful paragraph.
func (e *Enricher) DescribeFromURL(url string) (string, error) {
	resp, err := e.httpClient.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise before looking for prose
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	if meta, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		if d := clean(meta); d != "" {
			return d, nil
		}
	}

	var desc string
	doc.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := clean(s.Text())
		if len(text) >= 60 {
			desc = text
			return false
		}
		return true
	})
	if desc == "" {
		return "", fmt.Errorf("no description found")
	}
	return desc, nil
}

// Enrich fills in missing descriptions from each POI's page URL. Failures are
// silently skipped so a flaky page never blocks planning.
func (e *Enricher) Enrich(pois []trip.POI, urls map[string]string) []trip.POI {
	out := make([]trip.POI, len(pois))
	for i, p := range pois {
		if p.Description == "" {
			if url, ok := urls[p.ID]; ok && url != "" {
				if desc, err := e.DescribeFromURL(url); err == nil {
					p.Description = desc
				}
			}
		}
		out[i] = p
	}
	return out
}

func clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxDescriptionChars {
		s = s[:maxDescriptionChars]
	}
	return strings.TrimSpace(s)
}
