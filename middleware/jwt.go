package middleware

import (
	"courseapi/config"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Identity is the decoded token payload attached to authenticated requests.
type Identity struct {
	UserID  uint
	Email   string
	IsAdmin bool
}

var (
	ErrNoToken      = errors.New("no token provided")
	ErrBadHeader    = errors.New("invalid token format")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, email string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"id":      userID,
		"email":   email,
		"isAdmin": isAdmin,
		"iat":     time.Now().Unix(), // issued at; no exp claim, tokens do not expire
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// ParseIdentity extracts and verifies the bearer token from the Authorization
// header. It is the single verification routine: the auth middlewares and the
// controllers that handle the header themselves all go through it.
func ParseIdentity(c *fiber.Ctx) (*Identity, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, ErrNoToken
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, ErrBadHeader
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return nil, ErrInvalidToken
	}

	// JWT number claims decode as float64
	userID, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	identity := &Identity{UserID: uint(userID)}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if isAdmin, ok := claims["isAdmin"].(bool); ok {
		identity.IsAdmin = isAdmin
	}

	return identity, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	identity, err := ParseIdentity(c)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoToken):
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		case errors.Is(err, ErrBadHeader):
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		default:
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}
	}

	// Set the decoded identity in the request context
	c.Locals("identity", identity)

	return c.Next()
}

// AdminMiddleware requires the authenticated identity to carry the admin flag.
// Must run after JWTMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(*Identity)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if !identity.IsAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Action Forbidden!", nil)
	}

	return c.Next()
}
