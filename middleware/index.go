package middleware

import (
	"cinema_booking/config"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookie = "booking_session"

// Session gắn id phiên cho mỗi trình duyệt (cookie), dùng để buộc draft
// vào đúng một luồng đặt vé và correlate request với backend
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionId := c.Cookies(SessionCookie)
		if sessionId == "" {
			sessionId = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessionId,
				Expires:  time.Now().Add(24 * time.Hour),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Locals("sessionId", sessionId)
		return c.Next()
	}
}

// OptionalJWT đọc token khách hàng nếu có. Token hợp lệ được giữ lại nguyên
// văn để forward lên backend; không có hoặc sai thì đi tiếp như khách vãng lai.
func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")
		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			c.Locals("authToken", "")
			return c.Next()
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(config.Config("JWT_SECRET")), nil
		})
		if err != nil || !parsed.Valid {
			c.Locals("authToken", "")
			return c.Next()
		}

		c.Locals("authToken", token)
		c.Locals("user", parsed)
		return c.Next()
	}
}

// SessionId lấy id phiên từ context
func SessionId(c *fiber.Ctx) string {
	if v, ok := c.Locals("sessionId").(string); ok {
		return v
	}
	return ""
}

// AuthToken token khách hàng để forward, chuỗi rỗng nếu vãng lai
func AuthToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("authToken").(string); ok {
		return v
	}
	return ""
}
