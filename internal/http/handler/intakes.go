package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"casewrite/internal/model"
	"casewrite/internal/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// IntakeListResponse is one page of the intake ledger.
type IntakeListResponse struct {
	Items  []model.IntakeRecord `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// ListIntakes lists ledger rows with limit & offset. Without a ledger it answers 503.
//
// @Summary List intake ledger rows
// @Tags intakes
// @Produce json
// @Param limit query int false "Page size (1-100)" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} IntakeListResponse
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/v1/intakes [get]
func ListIntakes(repo repository.IntakeRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if repo == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "LEDGER_DISABLED", "intake ledger is not configured")
		}

		limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		if limit == 0 {
			limit = defaultPageLimit
		}
		limit = min(limit, maxPageLimit)

		page, err := repo.List(c.UserContext(), repository.PageQuery{Limit: limit, Offset: offset})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(IntakeListResponse{
			Items:  page.Items,
			Total:  page.Total,
			Limit:  limit,
			Offset: offset,
		})
	}
}
