package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/plannerx/plannerx-api/internal/application/dto"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
	"github.com/plannerx/plannerx-api/pkg/jwt"
)

// LocalUser key del usuario resuelto en c.Locals (después del middleware de auth).
const LocalUser = "current_user"

// AuthMiddleware valida el Bearer Token y resuelve el usuario FRESCO desde
// almacenamiento en cada petición. Los claims de rol/empresa embebidos en el
// token nunca se usan para autorizar: solo el sub (email) identifica al usuario,
// el registro vivo manda. Un usuario desactivado queda fuera aunque su token
// siga siendo válido.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "Not authenticated"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "Not authenticated"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "Not authenticated"})
		}

		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Invalid token"})
		}

		user, err := users.GetByEmail(c.UserContext(), claims.Subject)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "User not found"})
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetCurrentUser devuelve el usuario resuelto por el middleware, o nil fuera
// de una ruta protegida.
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
