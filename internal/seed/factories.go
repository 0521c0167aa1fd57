// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"saisonnalite/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tunes factory behavior.
type SeedOptions struct {
	// SkipBcrypt stores the demo password in plain text for faster seeding.
	SkipBcrypt bool
	// DryRun logs instead of writing to the database.
	DryRun bool
}

// DemoPassword is the password shared by all seeded accounts.
const DemoPassword = "SeasonalDemo1234"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rnd  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// CreateUser constructs and persists a user with the given role.
func (f *Factory) CreateUser(role models.Role, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email: gofakeit.Email(),
		Profile: &models.Profile{
			FullName: gofakeit.Name(),
			Role:     role,
		},
	}

	if f.opts.SkipBcrypt {
		user.Password = DemoPassword
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s (%s)", user.Email, role)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateLocation persists a sale location for the producer.
func (f *Factory) CreateLocation(producerID uint, overrides ...func(*models.Location)) (*models.Location, error) {
	kinds := []string{"market stall", "farm stand", "pickup point", "co-op shop"}
	location := &models.Location{
		Name:       fmt.Sprintf("%s %s", gofakeit.City(), kinds[f.rnd.Intn(len(kinds))]),
		Address:    gofakeit.Street() + ", " + gofakeit.City(),
		ProducerID: producerID,
	}

	for _, override := range overrides {
		override(location)
	}

	if f.opts.DryRun {
		f.nextID++
		location.ID = f.nextID
		log.Printf("[dry-run] CreateLocation: %s", location.Name)
		return location, nil
	}

	if err := f.db.Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

// CreateProduct persists a product built from a seasonal fixture. The
// availability window is a random slice of the fixture's season in the
// given year.
func (f *Factory) CreateProduct(producerID uint, fixture ProduceFixture, year int, overrides ...func(*models.Product)) (*models.Product, error) {
	seasonStart, seasonEnd := fixture.SeasonWindow(year)

	// Random sub-range, at least two weeks when the season allows.
	seasonDays := int(seasonEnd.Sub(seasonStart).Hours()/24) + 1
	startOffset := 0
	if seasonDays > 21 {
		startOffset = f.rnd.Intn(seasonDays - 21)
	}
	start := models.DateOf(seasonStart.AddDate(0, 0, startOffset))
	remaining := seasonDays - startOffset - 1
	length := remaining
	if remaining > 14 {
		length = 14 + f.rnd.Intn(remaining-14+1)
	}
	end := start.AddDays(length)

	product := &models.Product{
		Name:              fixture.Name,
		Description:       fixture.Description,
		AvailabilityStart: start,
		AvailabilityEnd:   end,
		ProducerID:        producerID,
	}

	for _, override := range overrides {
		override(product)
	}

	if f.opts.DryRun {
		f.nextID++
		product.ID = f.nextID
		log.Printf("[dry-run] CreateProduct: %s (%s..%s)", product.Name, product.AvailabilityStart, product.AvailabilityEnd)
		return product, nil
	}

	if err := f.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// CreateFavorite marks a product as favorite for the user, ignoring
// duplicates.
func (f *Factory) CreateFavorite(userID, productID uint) error {
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateFavorite: user=%d product=%d", userID, productID)
		return nil
	}
	favorite := models.Favorite{UserID: userID, ProductID: productID}
	return f.db.Where(favorite).FirstOrCreate(&favorite).Error
}
