package server

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/metrics"
)

const RequestIDHeader = "X-Request-ID"

type Options struct {
	AppName        string
	AllowedOrigins []string
}

// NewApp builds the fiber app with the middleware every route shares.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ErrorHandler: ErrorHandler,
	})

	app.Use(RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	return app
}

// corsConfig restricts CORS to the allow-list. Credentials are only allowed
// with explicit origins since fiber rejects them alongside a wildcard.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization," + RequestIDHeader,
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = "*"
		return cfg
	}
	cfg.AllowOrigins = strings.Join(origins, ",")
	cfg.AllowCredentials = true
	return cfg
}

// ErrorHandler renders every unhandled error as {"detail": ...}.
// Only fiber errors keep their message; anything else is a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		detail = fe.Message
	} else {
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{"detail": detail})
}

// RequestLogger tags each request with an id and logs/records it once the
// handler chain has finished.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Locals("requestID", requestID)

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		latency := time.Since(start)
		route := c.Route().Path

		metrics.RecordHTTPRequest(c.Method(), route, strconv.Itoa(status), latency.Seconds())

		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latency).
			Msg("request")

		return nil
	}
}
