package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth guards the declare/preview/rate endpoints with an HMAC
// signature derived from the admin key pair.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminKey := os.Getenv("ADMIN_API_KEY")
		adminSecret := os.Getenv("ADMIN_API_SECRET")

		h := hmac.New(sha256.New, []byte(adminSecret))
		h.Write([]byte(adminKey + adminSecret))
		expectedSignature := hex.EncodeToString(h.Sum(nil))

		if c.Get("X-Admin-Signature") != expectedSignature {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": 0,
				"msg":    "INVALID_SIGNATURE",
			})
		}

		return c.Next()
	}
}
