package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"resumatch/resume-job-matcher/internal/models"
	"resumatch/resume-job-matcher/internal/services"
)

type SearchHandler struct {
	store  *session.Store
	client services.JobSearchClient
}

func NewSearchHandler(store *session.Store, client services.JobSearchClient) *SearchHandler {
	return &SearchHandler{store: store, client: client}
}

// HandleSearch handles POST /jobs/search. Keywords come from the
// request when given, otherwise from the session. Zero matches is a
// success; classified upstream failures are surfaced so the caller can
// tell "no jobs" from "provider down".
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	location, ok := models.ParseLocation(req.Location)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "location must be one of: Remote, Hybrid, On-site",
		})
	}

	jobType, ok := models.ParseJobType(req.JobType)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_type must be one of: Full-time, Part-time, Contract, Freelance, Internship",
		})
	}

	keywords := splitKeywords(req.Keywords)
	if len(keywords) == 0 {
		sess, err := h.store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to open session",
			})
		}
		keywords, ok = sessionKeywords(sess)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no keywords available. Upload a resume or pass keywords explicitly.",
			})
		}
	}

	jobs, err := h.client.Search(
		c.UserContext(),
		strings.Join(keywords, ", "),
		location,
		jobType,
		req.ResultsWanted,
	)
	if err != nil {
		return h.searchError(c, err)
	}

	views := make([]models.JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, job.View())
	}

	return c.JSON(models.SearchResponse{
		Jobs:  views,
		Count: len(views),
	})
}

func (h *SearchHandler) searchError(c *fiber.Ctx, err error) error {
	log.Printf("❌ Job search failed: %v\n", err)

	switch {
	case errors.Is(err, services.ErrRateLimited):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "job search provider is rate limiting requests. Try again shortly.",
			"cause": "rate_limited",
		})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "job search provider rejected the API credential",
			"cause": "auth",
		})
	case errors.Is(err, services.ErrUpstream):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "job search provider returned an error",
			"cause": "upstream",
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "failed to reach the job search provider",
			"cause": "network",
		})
	}
}
