package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleFavorite handles POST /api/favorites/:productId/toggle
// @Summary Toggle favorite
// @Description Flips the favorite state of a product for the caller and
// @Description returns the resulting state.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 200 {object} object{product_id=int,is_favorite=bool}
// @Failure 404 {object} object{error=string}
// @Router /favorites/{productId}/toggle [post]
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	productID, err := s.parseID(c, "productId")
	if err != nil {
		return nil
	}

	nowFavorite, svcErr := s.favoriteService.Toggle(c.Context(), currentUserID(c), productID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"product_id":  productID,
		"is_favorite": nowFavorite,
	})
}

// GetFavorites handles GET /api/favorites
// @Summary List favorites
// @Description IDs of the caller's favorite products, most recent first.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{product_ids=[]int}
// @Router /favorites [get]
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	ids, err := s.favoriteService.ListProductIDs(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"product_ids": ids})
}
