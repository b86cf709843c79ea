package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"resumatch/resume-job-matcher/internal/models"
)

type KeywordsHandler struct {
	store *session.Store
}

func NewKeywordsHandler(store *session.Store) *KeywordsHandler {
	return &KeywordsHandler{store: store}
}

// HandleGet handles GET /keywords and returns the effective keyword
// list for this session.
func (h *KeywordsHandler) HandleGet(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open session",
		})
	}

	keywords, ok := sessionKeywords(sess)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no keywords extracted yet. Upload a resume first.",
		})
	}

	return c.JSON(models.KeywordsResponse{
		Keywords: keywords,
		Edited:   sessionKeywordsEdited(sess),
	})
}

// HandleUpdate handles PUT /keywords. The edited list replaces the
// derived one for all downstream searches.
func (h *KeywordsHandler) HandleUpdate(c *fiber.Ctx) error {
	var req models.KeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	keywords := splitKeywords(req.Keywords)
	if len(keywords) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "keywords must contain at least one non-empty entry",
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open session",
		})
	}
	if err := setSessionKeywords(sess, keywords, true); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save session",
		})
	}

	return c.JSON(models.KeywordsResponse{
		Keywords: keywords,
		Edited:   true,
	})
}
