package handlers_fiber

import (
	"net/http"

	"pr-cycle-metrics/internal/entities"
	"pr-cycle-metrics/internal/week"

	"github.com/gofiber/fiber/v2"
)

type cycleTimeResponse struct {
	Week string `json:"week"`
	entities.CycleTimeSummary
}

type byProjectResponse struct {
	Week string `json:"week"`
	entities.ProjectBreakdown
}

// GetCycleTime returns org-wide (or single-project) p50/p90 cycle time for
// the requested ISO week. Week defaults to the current one.
func (h *Handler) GetCycleTime(c *fiber.Ctx) error {
	wk, err := resolveWeek(c.Query("week"))
	if err != nil {
		return writeError(c, err)
	}

	summary, err := h.uc.CycleTime(c.Context(), week.Boundaries(wk), c.Query("project"))
	if err != nil {
		h.log.Errorw("failed to compute cycle time", "week", wk, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(cycleTimeResponse{Week: wk, CycleTimeSummary: summary})
}

// GetCycleTimeByProject returns the per-project cycle-time breakdown for the
// requested ISO week.
func (h *Handler) GetCycleTimeByProject(c *fiber.Ctx) error {
	wk, err := resolveWeek(c.Query("week"))
	if err != nil {
		return writeError(c, err)
	}

	breakdown, err := h.uc.CycleTimeByProject(c.Context(), week.Boundaries(wk))
	if err != nil {
		h.log.Errorw("failed to compute per-project cycle time", "week", wk, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(byProjectResponse{Week: wk, ProjectBreakdown: breakdown})
}

func resolveWeek(param string) (string, error) {
	if param == "" {
		return week.Current(), nil
	}
	if !week.IsValid(param) {
		return "", entities.ErrInvalidWeek
	}
	return param, nil
}
