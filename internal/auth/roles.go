package auth

import (
	"github.com/spec-kit/atelier-service/internal/domain"
	apperrors "github.com/spec-kit/atelier-service/pkg/util"

	"github.com/gofiber/fiber/v2"
)

// RequireRole ensures the principal holds one of the allowed roles. It
// only ever runs after Handle has attached a validated principal; a
// request with no principal is treated as unauthenticated, not as a
// role mismatch.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAdmin gates a route to administrators.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
