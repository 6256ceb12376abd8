package catalog

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"ecowaste_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeElasticTransport records every request and answers with a canned body.
type fakeElasticTransport struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
	response string
}

func (f *fakeElasticTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body := ""
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}
	f.requests = append(f.requests, req)
	f.bodies = append(f.bodies, body)

	header := http.Header{}
	header.Set("X-Elastic-Product", "Elasticsearch")
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(f.response)),
	}, nil
}

func newSearchFixture(t *testing.T, response string) (*SearchService, *fakeElasticTransport) {
	t.Helper()
	rt := &fakeElasticTransport{response: response}
	client, err := elasticsearch.NewClient(elasticsearch.Config{Transport: rt})
	require.NoError(t, err)
	return NewSearchService(client), rt
}

func TestSearchService_DisabledWithoutClient(t *testing.T) {
	var svc *SearchService
	assert.False(t, svc.Enabled())
	assert.False(t, NewSearchService(nil).Enabled())
}

func TestIndexProduct_WritesDealsIndex(t *testing.T) {
	svc, rt := newSearchFixture(t, `{"result":"created"}`)

	id, err := gocql.RandomUUID()
	require.NoError(t, err)
	svc.IndexProduct(context.Background(), models.Product{
		ID:   id,
		Name: "rescued carrots",
		Tags: []string{"veg"},
	})

	require.Len(t, rt.requests, 1)
	assert.Equal(t, http.MethodPut, rt.requests[0].Method)
	assert.Contains(t, rt.requests[0].URL.Path, "/deals/_doc/"+id.String())
	assert.Contains(t, rt.bodies[0], "rescued carrots")
}

func TestSearch_ParsesHits(t *testing.T) {
	svc, rt := newSearchFixture(t, `{
		"hits": {"hits": [
			{"_source": {"name": "rescued carrots", "price": 2.5}},
			{"_source": {"name": "day-old bread", "price": 1.0}}
		]}
	}`)

	results, err := svc.Search(context.Background(), "rescue")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "rescued carrots", results[0].Name)
	assert.Equal(t, 2.5, results[0].Price)

	require.Len(t, rt.requests, 1)
	assert.Contains(t, rt.bodies[0], "multi_match")
	assert.Contains(t, rt.bodies[0], "rescue")
}
