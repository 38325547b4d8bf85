// Package server exposes the analysis pipeline over HTTP. The surface is a
// thin shell: admission, one analyzer call, and a well-formed JSON envelope
// in every response.
package server

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/linkvet/linkvet/internal/analyzer"
)

// envelope is the response shape shared by every endpoint: a status field is
// always present, and the caller never sees a raw parse error or network
// exception.
type envelope struct {
	Data   *analyzer.Result `json:"data"`
	Error  *string          `json:"error"`
	URL    string           `json:"url"`
	Status string           `json:"status"`
}

// Server wires the analyzer to its HTTP routes.
type Server struct {
	app      *fiber.App
	analyzer *analyzer.Analyzer
	logger   *slog.Logger
}

// New builds the fiber application with its middleware and routes.
func New(a *analyzer.Analyzer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{analyzer: a, logger: logger}

	app := fiber.New(fiber.Config{
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/analyze", s.handleAnalyze)
	app.Get("/healthz", s.handleHealth)

	s.app = app

	return s
}

// App exposes the underlying fiber application for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen starts serving on the given address and blocks.
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	raw := c.Query("url")

	if !analyzer.IsValid(raw) {
		msg := "Invalid URL"
		return c.Status(fiber.StatusBadRequest).JSON(envelope{
			URL:    raw,
			Status: "error",
			Error:  &msg,
		})
	}

	result, err := s.analyzer.Analyze(c.Context(), raw)
	if err != nil {
		s.logger.Error("analysis failed", "url", raw, "error", err)

		msg := "Analysis failed: " + err.Error()

		return c.Status(fiber.StatusInternalServerError).JSON(envelope{
			URL:    raw,
			Status: "error",
			Error:  &msg,
		})
	}

	return c.JSON(envelope{
		URL:    raw,
		Status: "success",
		Data:   result,
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleError keeps unexpected failures (recovered panics included) inside
// the JSON envelope contract.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		s.logger.Error("unexpected failure", "path", c.Path(), "error", err)
		msg = "Analysis failed: " + msg
	}

	return c.Status(code).JSON(envelope{
		URL:    c.Query("url"),
		Status: "error",
		Error:  &msg,
	})
}
