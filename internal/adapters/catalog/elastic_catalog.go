package catalog

import (
	"context"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/goccy/go-json"
)

// Upper bound of documents fetched in one search (index.max_result_window default).
const elasticMaxDocs = 10000

type elasticSearchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string            `json:"_id"`
			Source domain.Restaurant `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// NewElasticClient builds a client for a single Elasticsearch node.
func NewElasticClient(url, user, password string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("elastic client %q: %w", url, err)
	}
	return client, nil
}

// LoadElasticCatalog snapshots every document of index into a StaticCatalog.
// Documents are read in index order; a missing "id" field falls back to the
// document _id.
func LoadElasticCatalog(ctx context.Context, client *elasticsearch.Client, index string) (_ *StaticCatalog, err error) {
	defer obs.Time(ctx, "catalog.LoadElasticCatalog")(&err)

	if client == nil {
		return nil, errors.New("load elastic catalog: client is nil")
	}

	body := fmt.Sprintf(`{"size": %d, "sort": ["_doc"], "query": {"match_all": {}}}`, elasticMaxDocs)

	res, err := client.Search(
		client.Search.WithContext(ctx),
		client.Search.WithIndex(index),
		client.Search.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("load elastic catalog: search %q: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("load elastic catalog: search %q: %s", index, res.String())
	}

	var decoded elasticSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("load elastic catalog: decode response: %w", err)
	}

	if decoded.Hits.Total.Value > len(decoded.Hits.Hits) {
		return nil, fmt.Errorf(
			"load elastic catalog: index %q holds %d documents, only %d fetched",
			index, decoded.Hits.Total.Value, len(decoded.Hits.Hits),
		)
	}

	restaurants := make([]domain.Restaurant, 0, len(decoded.Hits.Hits))
	for _, hit := range decoded.Hits.Hits {
		r := hit.Source
		if strings.TrimSpace(r.ID) == "" {
			r.ID = hit.ID
		}
		restaurants = append(restaurants, r)
	}

	c, err := NewStaticCatalog(restaurants)
	if err != nil {
		return nil, fmt.Errorf("load elastic catalog: %w", err)
	}
	return c, nil
}
