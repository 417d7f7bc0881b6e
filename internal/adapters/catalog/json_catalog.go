package catalog

import (
	"fmt"
	"os"
	"restaurant-finder-service/internal/domain"

	"github.com/goccy/go-json"
)

type catalogFile struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
}

// LoadJSONCatalog reads a {"restaurants": [...]} dataset from jsonPath.
func LoadJSONCatalog(jsonPath string) (*StaticCatalog, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", jsonPath, err)
	}

	var data catalogFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load catalog: parse json: %w", err)
	}

	c, err := NewStaticCatalog(data.Restaurants)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", jsonPath, err)
	}
	return c, nil
}
