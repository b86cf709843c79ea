package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"resumatch/resume-job-matcher/internal/models"
	"resumatch/resume-job-matcher/internal/services"
)

type ResumeHandler struct {
	store       *session.Store
	storage     services.StorageService
	pdfParser   services.PDFParserService
	extractor   services.KeywordExtractor
	maxFileSize int64
	topN        int
}

func NewResumeHandler(
	store *session.Store,
	storage services.StorageService,
	pdfParser services.PDFParserService,
	extractor services.KeywordExtractor,
	maxFileSize int64,
	topN int,
) *ResumeHandler {
	return &ResumeHandler{
		store:       store,
		storage:     storage,
		pdfParser:   pdfParser,
		extractor:   extractor,
		maxFileSize: maxFileSize,
		topN:        topN,
	}
}

// HandleAnalyze handles POST /resume: save the upload to a temp file,
// extract text, run the resume heuristics and, when they pass, derive
// keywords and remember them in the session.
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no resume file uploaded. Please upload 'resume' as a PDF file.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	path, err := h.storage.SaveTemp(file)
	if err != nil {
		if errors.Is(err, services.ErrNotPDF) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "please upload a valid PDF file",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save uploaded file",
		})
	}
	// The temp file is removed whether or not extraction succeeds.
	defer func() {
		if err := h.storage.Remove(path); err != nil {
			log.Printf("⚠️  Failed to remove temp file %s: %v\n", path, err)
		}
	}()

	text, err := h.pdfParser.ExtractText(path)
	if err != nil {
		if errors.Is(err, services.ErrNoText) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "no text found in the uploaded PDF",
			})
		}
		log.Printf("❌ Failed to extract text from %s: %v\n", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "unexpected error while reading the PDF",
		})
	}

	// A low score is a warning, not an error; the user may re-upload.
	score := services.Score(text)
	if score < services.AcceptThreshold {
		return c.JSON(models.AnalyzeResponse{
			Accepted: false,
			Score:    score,
			Warning:  "This doesn't seem like a resume. Please check your file.",
		})
	}

	keywords, err := h.extractor.Extract(services.Normalize(text), h.topN)
	if err != nil {
		log.Printf("❌ Failed to extract keywords: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to extract keywords from resume",
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open session",
		})
	}
	if err := setSessionKeywords(sess, keywords, false); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save session",
		})
	}

	return c.JSON(models.AnalyzeResponse{
		Accepted: true,
		Score:    score,
		Keywords: keywords,
	})
}
