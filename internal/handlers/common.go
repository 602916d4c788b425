package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"mistakebook/internal/services"
	"mistakebook/internal/types"
	"mistakebook/internal/utils"
)

// parseListParam collects a repeatable query parameter (e.g. units, tags),
// supporting both multiple keys and comma-separated values. First-seen order
// is preserved so filter semantics stay deterministic.
func parseListParam(c *fiber.Ctx, name string) []string {
	seen := make(map[string]struct{})
	var values []string

	args := c.Context().QueryArgs()
	args.VisitAll(func(key, value []byte) {
		if string(key) != name {
			return
		}
		for _, v := range strings.Split(string(value), ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	})

	return values
}

// formList collects a repeatable multipart form field, splitting
// comma-separated values the same way as parseListParam.
func formList(c *fiber.Ctx, name string) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}

	var values []string
	for _, raw := range form.Value[name] {
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

// sendServiceError translates a service failure into the standard envelope:
// storage errors map by code, tag validation maps to 400, anything else is a 500.
func sendServiceError(c *fiber.Ctx, err error, errorType string) error {
	var se *types.StorageError
	if errors.As(err, &se) {
		return utils.StorageErrorResponse(c, se)
	}
	if errors.Is(err, services.ErrTagTooLong) {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
