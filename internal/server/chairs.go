package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rmalka/county-chairs/internal/chair"
	"github.com/rmalka/county-chairs/internal/store"
)

// ListChairsHandler returns every contact record, optionally filtered by the
// ?state= query parameter (two-letter code, case-insensitive).
func ListChairsHandler(chairs *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := chairs.List()
		if err != nil {
			return storageError(c, err)
		}

		if code := c.Query("state"); code != "" {
			filtered := make([]chair.Record, 0, len(records))
			for _, rec := range records {
				if strings.EqualFold(rec.StateCode, code) {
					filtered = append(filtered, rec)
				}
			}
			records = filtered
		}

		return c.JSON(records)
	}
}

// GetChairHandler returns one record by ID.
func GetChairHandler(chairs *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := chairs.Get(c.Params("id"))
		if err != nil {
			return storageError(c, err)
		}
		return c.JSON(rec)
	}
}

// CreateChairHandler adds a record. The ID is always derived server-side
// from state code and county; any client-supplied ID is ignored.
func CreateChairHandler(chairs *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rec chair.Record
		if err := c.BodyParser(&rec); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if rec.State == "" || rec.StateCode == "" || rec.County == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "state, stateCode and county are required",
			})
		}

		created, err := chairs.Create(rec)
		if err != nil {
			return storageError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateChairHandler merges the request body into an existing record. Only
// the fields present in the body change; the ID never does.
func UpdateChairHandler(chairs *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patch, err := decodePatch(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		updated, err := chairs.Update(c.Params("id"), patch)
		if err != nil {
			return storageError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteChairHandler removes a record by ID.
func DeleteChairHandler(chairs *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := chairs.Delete(c.Params("id")); err != nil {
			return storageError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Chair deleted successfully",
		})
	}
}

// StatesHandler returns per-state coverage counts ordered by state code.
func StatesHandler(chairs *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := chairs.Summary()
		if err != nil {
			return storageError(c, err)
		}
		return c.JSON(summary)
	}
}

// ExportHandler serves the full dataset as a file download.
func ExportHandler(chairs *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := chairs.List()
		if err != nil {
			return storageError(c, err)
		}

		c.Set(fiber.HeaderContentDisposition, `attachment; filename="county-chairs.json"`)
		return c.JSON(records)
	}
}
