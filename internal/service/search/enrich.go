package search

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
)

const (
	// snippetLimit caps the enriched snippet length in characters
	snippetLimit = 600

	enrichTimeout = 15 * time.Second
)

// Enricher fetches result pages and expands their snippets with page text
type Enricher struct {
	maxPages int
}

// NewEnricher creates an enricher that visits at most maxPages result URLs
func NewEnricher(maxPages int) *Enricher {
	return &Enricher{maxPages: maxPages}
}

// Enrich replaces short search snippets with text extracted from the
// result page itself. Fetch failures leave the original snippet in place.
func (e *Enricher) Enrich(ctx context.Context, results []models.ResearchResult) []models.ResearchResult {
	if e.maxPages <= 0 {
		return results
	}

	enriched := make([]models.ResearchResult, len(results))
	copy(enriched, results)

	visited := 0
	for i := range enriched {
		if visited >= e.maxPages {
			break
		}
		select {
		case <-ctx.Done():
			return enriched
		default:
		}

		text := fetchPageText(enriched[i].URL)
		if text != "" {
			enriched[i].Snippet = text
		}
		visited++
	}

	return enriched
}

// EnrichingClient couples a search client with page enrichment so
// callers get expanded snippets from a single Search call.
type EnrichingClient struct {
	Client   *Client
	Enricher *Enricher
}

// Search runs the query and enriches the returned snippets
func (c *EnrichingClient) Search(ctx context.Context, query string, count int) ([]models.ResearchResult, error) {
	results, err := c.Client.Search(ctx, query, count)
	if err != nil {
		return nil, err
	}
	return c.Enricher.Enrich(ctx, results), nil
}

// fetchPageText extracts the visible paragraph text of a page
func fetchPageText(pageURL string) string {
	if pageURL == "" {
		return ""
	}

	c := colly.NewCollector(colly.MaxDepth(1))
	extensions.RandomUserAgent(c)
	c.SetRequestTimeout(enrichTimeout)

	var text string
	c.OnHTML("body", func(el *colly.HTMLElement) {
		var parts []string
		el.DOM.Find("p").Each(func(_ int, s *goquery.Selection) {
			paragraph := strings.TrimSpace(s.Text())
			if len(paragraph) > 40 {
				parts = append(parts, paragraph)
			}
		})
		text = strings.Join(parts, " ")
	})

	if err := c.Visit(pageURL); err != nil {
		return ""
	}
	c.Wait()

	if len(text) > snippetLimit {
		text = text[:snippetLimit]
		if idx := strings.LastIndex(text, " "); idx > 0 {
			text = text[:idx]
		}
	}

	return text
}
