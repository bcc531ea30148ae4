package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rmalka/county-chairs/internal/candidate"
	"github.com/rmalka/county-chairs/internal/store"
)

// ListCandidatesHandler returns every tracked candidate, optionally filtered
// by ?status=, ?state=, or ?county=. The county filter matches the way
// candidates link to contact records: normalized names, trailing state
// qualifiers and jurisdiction suffixes ignored.
func ListCandidatesHandler(candidates *store.CandidateStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := candidates.List()
		if err != nil {
			return storageError(c, err)
		}

		status := c.Query("status")
		state := c.Query("state")
		county := c.Query("county")
		if status != "" || state != "" || county != "" {
			filtered := make([]candidate.Record, 0, len(records))
			for _, rec := range records {
				if status != "" && string(rec.Status) != status {
					continue
				}
				if state != "" && rec.StateCode != state {
					continue
				}
				if county != "" && !candidate.MatchCounty(rec.County, county) {
					continue
				}
				filtered = append(filtered, rec)
			}
			records = filtered
		}

		return c.JSON(records)
	}
}

// GetCandidateHandler returns one candidate by ID.
func GetCandidateHandler(candidates *store.CandidateStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := candidates.Get(c.Params("id"))
		if err != nil {
			return storageError(c, err)
		}
		return c.JSON(rec)
	}
}

// CreateCandidateHandler adds a candidate. IDs are sequential and assigned
// by the store.
func CreateCandidateHandler(candidates *store.CandidateStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rec candidate.Record
		if err := c.BodyParser(&rec); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if rec.Name == "" || rec.County == "" || rec.StateCode == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "name, county and stateCode are required",
			})
		}
		if rec.Status != "" && !rec.Status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown candidate status",
			})
		}

		created, err := candidates.Create(rec)
		if err != nil {
			return storageError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateCandidateHandler merges the request body into an existing candidate.
func UpdateCandidateHandler(candidates *store.CandidateStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patch, err := decodePatch(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		updated, err := candidates.Update(c.Params("id"), patch)
		if err != nil {
			return storageError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteCandidateHandler removes a candidate. Freed ID numbers are never
// reused.
func DeleteCandidateHandler(candidates *store.CandidateStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := candidates.Delete(c.Params("id")); err != nil {
			return storageError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Candidate deleted successfully",
		})
	}
}
