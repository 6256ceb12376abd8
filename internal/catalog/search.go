package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"ecowaste_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const dealsIndex = "deals"

// SearchService indexes deals in Elasticsearch and serves full-text search
// over name, description and tags. A nil client turns both into no-ops so
// the rest of the API keeps working without a search cluster.
type SearchService struct {
	client *elasticsearch.Client
}

func NewSearchService(client *elasticsearch.Client) *SearchService {
	return &SearchService{client: client}
}

func (s *SearchService) Enabled() bool {
	return s != nil && s.client != nil
}

// IndexProduct pushes one deal into the search index. Failures are logged,
// never propagated: search lags behind the catalog rather than blocking it.
func (s *SearchService) IndexProduct(ctx context.Context, p models.Product) {
	if !s.Enabled() {
		return
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Println("❌ Deal serialization for indexing failed:", err)
		return
	}

	req := esapi.IndexRequest{
		Index:      dealsIndex,
		DocumentID: p.ID.String(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		log.Println("❌ Elasticsearch index request failed:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elasticsearch rejected deal %s: %s", p.Name, res.String())
	}
}

// Search runs a multi_match query and returns the matching deals.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if !s.Enabled() {
		return nil, errors.New("catalog: search is not configured")
	}

	var buf bytes.Buffer
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"name", "description", "tags"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode search query: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(dealsIndex),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]models.Product, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
