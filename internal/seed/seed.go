package seed

import (
	"fmt"
	"log"
	"time"

	"saisonnalite/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a plausible marketplace.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder returns a Seeder with default options.
func NewSeeder(db *gorm.DB) *Seeder {
	return NewSeederWithOptions(db, SeedOptions{})
}

// NewSeederWithOptions returns a Seeder with explicit factory options.
func NewSeederWithOptions(db *gorm.DB, opts SeedOptions) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes every seeded row. Order respects foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []string{"favorites", "products", "locations", "profiles", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// SeedMarketplace creates producers with locations and seasonal products,
// plus consumers with a few favorites each. It returns the created
// producers and consumers.
func (s *Seeder) SeedMarketplace(numProducers, numConsumers int) ([]*models.User, []*models.User, error) {
	fixtures, err := LoadProduceFixtures()
	if err != nil {
		return nil, nil, err
	}
	year := time.Now().Year()

	producers := make([]*models.User, 0, numProducers)
	var products []*models.Product

	for i := 0; i < numProducers; i++ {
		producer, err := s.factory.CreateUser(models.RoleProducer)
		if err != nil {
			return nil, nil, fmt.Errorf("creating producer: %w", err)
		}
		producers = append(producers, producer)

		numLocations := 1 + s.factory.rnd.Intn(3)
		for j := 0; j < numLocations; j++ {
			if _, err := s.factory.CreateLocation(producer.ID); err != nil {
				return nil, nil, fmt.Errorf("creating location: %w", err)
			}
		}

		numProducts := 2 + s.factory.rnd.Intn(4)
		for j := 0; j < numProducts; j++ {
			fixture := fixtures[s.factory.rnd.Intn(len(fixtures))]
			product, err := s.factory.CreateProduct(producer.ID, fixture, year)
			if err != nil {
				return nil, nil, fmt.Errorf("creating product: %w", err)
			}
			products = append(products, product)
		}
	}

	consumers := make([]*models.User, 0, numConsumers)
	for i := 0; i < numConsumers; i++ {
		consumer, err := s.factory.CreateUser(models.RoleConsumer)
		if err != nil {
			return nil, nil, fmt.Errorf("creating consumer: %w", err)
		}
		consumers = append(consumers, consumer)

		if len(products) == 0 {
			continue
		}
		numFavorites := s.factory.rnd.Intn(5)
		for j := 0; j < numFavorites; j++ {
			product := products[s.factory.rnd.Intn(len(products))]
			if err := s.factory.CreateFavorite(consumer.ID, product.ID); err != nil {
				return nil, nil, fmt.Errorf("creating favorite: %w", err)
			}
		}
	}

	log.Printf("Seeded %d producers, %d products, %d consumers", len(producers), len(products), len(consumers))
	return producers, consumers, nil
}
