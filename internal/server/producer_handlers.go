package server

import (
	"saisonnalite/internal/models"
	"saisonnalite/internal/service"

	"github.com/gofiber/fiber/v2"
)

type productRequest struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	AvailabilityStart models.Date `json:"availability_start"`
	AvailabilityEnd   models.Date `json:"availability_end"`
}

type locationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// GetMyCatalog handles GET /api/producers/me/catalog
// @Summary Producer dashboard catalog
// @Description The authenticated producer's products and sale locations.
// @Tags producers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{products=[]models.Product,locations=[]models.Location}
// @Failure 403 {object} object{error=string}
// @Router /producers/me/catalog [get]
func (s *Server) GetMyCatalog(c *fiber.Ctx) error {
	products, locations, err := s.producerService.Catalog(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return c.JSON(fiber.Map{
		"products":  products,
		"locations": locations,
	})
}

// CreateProduct handles POST /api/producers/me/products
// @Summary Create product
// @Tags producers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body productRequest true "Product fields"
// @Success 201 {object} models.Product
// @Failure 400 {object} object{error=string}
// @Router /producers/me/products [post]
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, err := s.producerService.CreateProduct(c.Context(), service.ProductInput{
		ProducerID:        currentUserID(c),
		Name:              req.Name,
		Description:       req.Description,
		AvailabilityStart: req.AvailabilityStart,
		AvailabilityEnd:   req.AvailabilityEnd,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /api/producers/me/products/:id
// @Summary Update product
// @Tags producers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body productRequest true "Product fields"
// @Success 200 {object} models.Product
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /producers/me/products/{id} [put]
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, svcErr := s.producerService.UpdateProduct(c.Context(), id, service.ProductInput{
		ProducerID:        currentUserID(c),
		Name:              req.Name,
		Description:       req.Description,
		AvailabilityStart: req.AvailabilityStart,
		AvailabilityEnd:   req.AvailabilityEnd,
	})
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(product)
}

// DeleteProduct handles DELETE /api/producers/me/products/:id
// @Summary Delete product
// @Description Removes the product together with every favorite pointing at it.
// @Tags producers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /producers/me/products/{id} [delete]
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.producerService.DeleteProduct(c.Context(), currentUserID(c), id); svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// CreateLocation handles POST /api/producers/me/locations
// @Summary Create sale location
// @Tags producers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body locationRequest true "Location fields"
// @Success 201 {object} models.Location
// @Failure 400 {object} object{error=string}
// @Router /producers/me/locations [post]
func (s *Server) CreateLocation(c *fiber.Ctx) error {
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	location, err := s.producerService.CreateLocation(c.Context(), service.LocationInput{
		ProducerID: currentUserID(c),
		Name:       req.Name,
		Address:    req.Address,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// UpdateLocation handles PUT /api/producers/me/locations/:id
// @Summary Update sale location
// @Tags producers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body locationRequest true "Location fields"
// @Success 200 {object} models.Location
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /producers/me/locations/{id} [put]
func (s *Server) UpdateLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	location, svcErr := s.producerService.UpdateLocation(c.Context(), id, service.LocationInput{
		ProducerID: currentUserID(c),
		Name:       req.Name,
		Address:    req.Address,
	})
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(location)
}

// DeleteLocation handles DELETE /api/producers/me/locations/:id
// @Summary Delete sale location
// @Tags producers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /producers/me/locations/{id} [delete]
func (s *Server) DeleteLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.producerService.DeleteLocation(c.Context(), currentUserID(c), id); svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Location deleted"})
}
