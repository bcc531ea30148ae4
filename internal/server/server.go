// Package server exposes the contact directory over HTTP. All responses are
// JSON; resource errors map to 404, uniqueness conflicts to 409 with the
// colliding ID, and storage failures to 500.
package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/rmalka/county-chairs/internal/store"
)

// New assembles the fiber application with every API route registered.
func New(chairs *store.Store, candidates *store.CandidateStore) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "County Chairs API",
	})

	app.Use(fiberlogger.New())

	app.Get("/api/health", HealthHandler())

	app.Get("/api/chairs", ListChairsHandler(chairs))
	app.Post("/api/chairs", CreateChairHandler(chairs))
	app.Get("/api/chairs/:id", GetChairHandler(chairs))
	app.Put("/api/chairs/:id", UpdateChairHandler(chairs))
	app.Delete("/api/chairs/:id", DeleteChairHandler(chairs))

	app.Get("/api/states", StatesHandler(chairs))
	app.Get("/api/export", ExportHandler(chairs))

	app.Get("/api/candidates", ListCandidatesHandler(candidates))
	app.Post("/api/candidates", CreateCandidateHandler(candidates))
	app.Get("/api/candidates/:id", GetCandidateHandler(candidates))
	app.Put("/api/candidates/:id", UpdateCandidateHandler(candidates))
	app.Delete("/api/candidates/:id", DeleteCandidateHandler(candidates))

	return app
}

// HealthHandler reports liveness.
func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// storageError converts a store failure into the HTTP response it maps to.
func storageError(c *fiber.Ctx, err error) error {
	var dup *store.DuplicateError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	case errors.As(err, &dup):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Record already exists for this county",
			"id":    dup.ID,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Storage failure",
		})
	}
}

// decodePatch reads a request body as a field-level patch. Unknown JSON is a
// 400, not a 500.
func decodePatch(c *fiber.Ctx) (map[string]json.RawMessage, error) {
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return nil, err
	}
	return patch, nil
}
