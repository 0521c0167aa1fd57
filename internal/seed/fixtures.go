package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed produce.yml
var produceYAML []byte

// ProduceFixture describes one seasonal item from the bundled catalog.
// StartMonth and EndMonth bound the typical sale season; EndMonth may be
// smaller than StartMonth for seasons crossing the new year.
type ProduceFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	StartMonth  int    `yaml:"start_month"`
	EndMonth    int    `yaml:"end_month"`
}

type produceCatalog struct {
	Produce []ProduceFixture `yaml:"produce"`
}

// LoadProduceFixtures parses the bundled seasonal produce catalog.
func LoadProduceFixtures() ([]ProduceFixture, error) {
	var catalog produceCatalog
	if err := yaml.Unmarshal(produceYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parsing produce fixtures: %w", err)
	}
	if len(catalog.Produce) == 0 {
		return nil, fmt.Errorf("produce fixtures are empty")
	}
	for _, p := range catalog.Produce {
		if p.StartMonth < 1 || p.StartMonth > 12 || p.EndMonth < 1 || p.EndMonth > 12 {
			return nil, fmt.Errorf("fixture %q has months outside 1..12", p.Name)
		}
	}
	return catalog.Produce, nil
}

// SeasonWindow converts a fixture's months into a concrete date range in the
// given year.
func (p ProduceFixture) SeasonWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(p.StartMonth), 1, 0, 0, 0, 0, time.UTC)
	endYear := year
	if p.EndMonth < p.StartMonth {
		endYear++
	}
	// Last day of the end month.
	end := time.Date(endYear, time.Month(p.EndMonth)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return start, end
}
