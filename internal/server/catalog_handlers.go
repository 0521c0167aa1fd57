package server

import (
	"time"

	"saisonnalite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetWeekCatalog handles GET /api/catalog/week
// @Summary Weekly catalog
// @Description Products on sale during the week containing the given date.
// @Description The optional seq query parameter is echoed back in the
// @Description X-Query-Seq header so clients can discard stale responses
// @Description when week navigation races.
// @Tags catalog
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD, default today)"
// @Param seq query string false "Client request sequence number"
// @Success 200 {object} service.CatalogWeek
// @Failure 400 {object} object{error=string}
// @Router /catalog/week [get]
func (s *Server) GetWeekCatalog(c *fiber.Ctx) error {
	ref := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := models.ParseDate(dateStr)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		ref = parsed.Time
	}

	if seq := c.Query("seq"); seq != "" {
		c.Set("X-Query-Seq", seq)
	}

	userID, _ := s.optionalUserID(c)

	week, err := s.catalogService.GetWeek(c.Context(), ref, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(week)
}
