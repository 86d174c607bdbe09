package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppOptions struct {
	Views       fiber.Views
	AssetsDir   string
	CORSOrigins string
	AccessLog   bool
	Logger      *zap.Logger
}

func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:                 opts.Views,
		ErrorHandler:          errorHandler(opts.Logger),
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	}))
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	if opts.AssetsDir != "" {
		app.Static("/assets", opts.AssetsDir)
	}
	return app
}

func Routes(app *fiber.App, h *Handler, ws *WebSocketHandler) {
	app.Get("/", h.IndexPage)
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Post("/predict", h.Predict)
	api.Post("/analyze", h.Predict)
	api.Post("/explain", h.Explain)
	api.Get("/suggestions", h.Suggestions)
	api.Get("/live-news", h.LiveNews)

	app.Get("/ws/feed", ws.WebSocketMiddleware, websocket.New(ws.HandleWebSocket))
}

// errorHandler keeps fiber's own status errors (404, 426, ...) and turns
// everything else into a bare 500.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		log.Error("request failed",
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
