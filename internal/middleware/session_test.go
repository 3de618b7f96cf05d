package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionApp(t *testing.T, secret string) (*fiber.App, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	handler, rdb, err := Session(SessionConfig{Secret: secret, RedisURL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	app := fiber.New()
	app.Use(handler)
	return app, mr
}

func sessionCookie(secret, sessionID string) *http.Cookie {
	return &http.Cookie{Name: SessionCookieName, Value: SignSessionID(secret, sessionID)}
}

func TestSignSessionID_VerifiesAndRejectsTamper(t *testing.T) {
	signed := SignSessionID("topsecret", "abc-123")
	assert.Equal(t, "abc-123", parseSessionCookie("topsecret", signed))

	// Flip the ID but keep the original tag, or strip the tag entirely.
	assert.Empty(t, parseSessionCookie("topsecret", "abc-124"+signed[len("abc-123"):]))
	assert.Empty(t, parseSessionCookie("topsecret", "abc-123"))

	// No secret configured: the cookie value is the session ID as-is.
	assert.Equal(t, "abc-123", SignSessionID("", "abc-123"))
	assert.Equal(t, "abc-123", parseSessionCookie("", "abc-123"))
}

func TestSession_SignedCookieLoadsUser(t *testing.T) {
	app, mr := setupSessionApp(t, "topsecret")
	require.NoError(t, mr.Set(SessionRedisPrefix+"sid-1", `{"user":{"email":"ada@example.com"}}`))

	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, _ := c.Locals("user").(map[string]interface{})
		if user == nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(user["email"].(string))
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(sessionCookie("topsecret", "sid-1"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSession_TamperedCookieCarriesNoSession(t *testing.T) {
	app, mr := setupSessionApp(t, "topsecret")
	require.NoError(t, mr.Set(SessionRedisPrefix+"sid-1", `{"user":{"email":"ada@example.com"}}`))

	app.Get("/whoami", func(c *fiber.Ctx) error {
		if c.Locals("user") != nil {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.SendStatus(fiber.StatusUnauthorized)
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1.forged-signature"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSession_DestroyPreventsKeyRecreation(t *testing.T) {
	app, mr := setupSessionApp(t, "")
	require.NoError(t, mr.Set(SessionRedisPrefix+"sid-1", `{"user":{"email":"ada@example.com"}}`))

	// Logout shape: delete the Redis key, then destroy the session. The
	// middleware's save step must not write the key back afterwards.
	app.Delete("/logout", func(c *fiber.Ctx) error {
		mr.Del(SessionRedisPrefix + GetSessionID(c))
		DestroySession(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("DELETE", "/logout", nil)
	req.AddCookie(sessionCookie("", "sid-1"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.False(t, mr.Exists(SessionRedisPrefix+"sid-1"))
}
