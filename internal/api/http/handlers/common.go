package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/auth"
	"github.com/spec-kit/atelier-service/internal/events"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// pageParams maps page/limit query params to limit/offset.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return limit, (page - 1) * limit
}

// actorFrom derives event actor metadata from the authenticated principal.
func actorFrom(c *fiber.Ctx) events.Actor {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return events.Actor{UserID: principal.UserID, Role: principal.Role}
	}
	return events.Actor{}
}
