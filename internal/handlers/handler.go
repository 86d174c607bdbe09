package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/latestcomment/truthlens/internal/models"
	"github.com/latestcomment/truthlens/internal/services"
	"go.uber.org/zap"
)

type Handler struct {
	Analyzer  *services.AnalyzeService
	Explainer *services.ExplainService
	Suggester *services.SuggestionService
	News      *services.NewsService
	Feed      *services.FeedService
	Views     fiber.Views
	Logger    *zap.Logger
}

func NewHandler(analyzer *services.AnalyzeService, explainer *services.ExplainService, suggester *services.SuggestionService,
	news *services.NewsService, feed *services.FeedService, views fiber.Views, logger *zap.Logger) *Handler {
	return &Handler{
		Analyzer:  analyzer,
		Explainer: explainer,
		Suggester: suggester,
		News:      news,
		Feed:      feed,
		Views:     views,
		Logger:    logger,
	}
}

func (h *Handler) IndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "TruthLens",
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "ok",
		"feedSubscribers": h.Feed.SubscriberCount(),
	})
}

// textField pulls a non-empty string "text" (and optional "model_type") out
// of a JSON body.
func textField(c *fiber.Ctx) (string, string, bool) {
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return "", "", false
	}
	text, ok := body["text"].(string)
	if !ok || text == "" {
		return "", "", false
	}
	model, _ := body["model_type"].(string)
	return text, model, true
}

func badText(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text is required"})
}

func (h *Handler) Predict(c *fiber.Ctx) error {
	text, model, ok := textField(c)
	if !ok {
		return badText(c)
	}

	result, err := h.Analyzer.Analyze(c.UserContext(), text, models.ParseModelType(model))
	if errors.Is(err, services.ErrTextRequired) {
		return badText(c)
	}
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	return c.JSON(result)
}

func (h *Handler) Explain(c *fiber.Ctx) error {
	text, _, ok := textField(c)
	if !ok {
		return badText(c)
	}
	h.Logger.Debug("explain requested", zap.Int("length", len(text)))

	var buf bytes.Buffer
	if err := h.Views.Render(&buf, "partials/explanation", h.Explainer.Explain(text)); err != nil {
		return fmt.Errorf("render explanation: %w", err)
	}
	return c.JSON(fiber.Map{"html": buf.String()})
}

func (h *Handler) Suggestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"suggestions": h.Suggester.Suggest(c.UserContext(), c.Query("q")),
	})
}

func (h *Handler) LiveNews(c *fiber.Ctx) error {
	return c.JSON(h.News.LiveNews(c.UserContext(), c.Query("topic"), c.Query("region")))
}
