package service

import (
	"context"

	"saisonnalite/internal/cache"
	"saisonnalite/internal/models"
	"saisonnalite/internal/repository"
	"saisonnalite/internal/validation"
)

type ProducerService struct {
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

type ProductInput struct {
	ProducerID        uint
	Name              string
	Description       string
	AvailabilityStart models.Date
	AvailabilityEnd   models.Date
}

type LocationInput struct {
	ProducerID uint
	Name       string
	Address    string
}

func NewProducerService(
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *ProducerService {
	return &ProducerService{
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

func validateProductInput(in ProductInput) error {
	if in.Name == "" {
		return models.NewValidationError("Name is required")
	}
	if len(in.Name) > 200 {
		return models.NewValidationError("Name too long (max 200 characters)")
	}
	if len(in.Description) > 5000 {
		return models.NewValidationError("Description too long (max 5000 characters)")
	}
	if err := validation.ValidateAvailability(in.AvailabilityStart, in.AvailabilityEnd); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

func (s *ProducerService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:              in.Name,
		Description:       in.Description,
		AvailabilityStart: in.AvailabilityStart,
		AvailabilityEnd:   in.AvailabilityEnd,
		ProducerID:        in.ProducerID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProducerService) UpdateProduct(ctx context.Context, productID uint, in ProductInput) (*models.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.ProducerID != in.ProducerID {
		return nil, models.NewForbiddenError("You can only edit your own products")
	}

	product.Name = in.Name
	product.Description = in.Description
	product.AvailabilityStart = in.AvailabilityStart
	product.AvailabilityEnd = in.AvailabilityEnd

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product and every favorite pointing at it.
func (s *ProducerService) DeleteProduct(ctx context.Context, producerID, productID uint) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.ProducerID != producerID {
		return models.NewForbiddenError("You can only delete your own products")
	}
	return s.productRepo.Delete(ctx, productID)
}

// Catalog returns the producer's own products and sale locations, most
// recent first.
func (s *ProducerService) Catalog(ctx context.Context, producerID uint) ([]models.Product, []models.Location, error) {
	type catalog struct {
		Products  []models.Product  `json:"products"`
		Locations []models.Location `json:"locations"`
	}

	var c catalog
	key := cache.ProducerCatalogKey(producerID)
	err := cache.Aside(ctx, key, &c, cache.ProducerCatalogTTL, func() error {
		products, err := s.productRepo.ListByProducer(ctx, producerID)
		if err != nil {
			return err
		}
		locations, err := s.locationRepo.ListByProducer(ctx, producerID)
		if err != nil {
			return err
		}
		c = catalog{Products: products, Locations: locations}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return c.Products, c.Locations, nil
}

func validateLocationInput(in LocationInput) error {
	if in.Name == "" {
		return models.NewValidationError("Name is required")
	}
	if len(in.Name) > 200 {
		return models.NewValidationError("Name too long (max 200 characters)")
	}
	if len(in.Address) > 500 {
		return models.NewValidationError("Address too long (max 500 characters)")
	}
	return nil
}

func (s *ProducerService) CreateLocation(ctx context.Context, in LocationInput) (*models.Location, error) {
	if err := validateLocationInput(in); err != nil {
		return nil, err
	}

	location := &models.Location{
		Name:       in.Name,
		Address:    in.Address,
		ProducerID: in.ProducerID,
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *ProducerService) UpdateLocation(ctx context.Context, locationID uint, in LocationInput) (*models.Location, error) {
	if err := validateLocationInput(in); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if location.ProducerID != in.ProducerID {
		return nil, models.NewForbiddenError("You can only edit your own locations")
	}

	location.Name = in.Name
	location.Address = in.Address

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *ProducerService) DeleteLocation(ctx context.Context, producerID, locationID uint) error {
	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if location.ProducerID != producerID {
		return models.NewForbiddenError("You can only delete your own locations")
	}
	return s.locationRepo.Delete(ctx, locationID)
}
