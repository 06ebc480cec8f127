package middleware

import (
	"fmt"
	"strings"
	"time"

	"lms/config"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user. Token issuance
// normally lives in the external auth service; this mirrors its
// claims so seeded and test tokens are interchangeable.
func GenerateJWT(userID uint, fullName, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"fullName": fullName,
		"role":     role,
		"email":    email,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware checks for a valid bearer token and stores the
// authenticated principal in the request context
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString, err := bearerToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": err.Error(),
		})
	}

	// When an auth service is configured, verify the token there
	// instead of locally
	if config.AppConfig.AuthServiceURL != "" {
		principal, err := utils.IntrospectToken(tokenString)
		if err != nil || !principal.Active {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Invalid or expired token",
			})
		}
		setPrincipal(c, principal.UserID, principal.FullName, principal.Role, principal.Email)
		return c.Next()
	}

	userID, fullName, role, email, err := parseToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid or expired token",
		})
	}

	setPrincipal(c, userID, fullName, role, email)
	return c.Next()
}

// OptionalJWTMiddleware populates the principal when a valid token is
// present but lets anonymous requests through. Used by course detail
// to decide whether lesson video URLs may be shown.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	tokenString, err := bearerToken(c)
	if err != nil {
		return c.Next()
	}

	userID, fullName, role, email, err := parseToken(tokenString)
	if err == nil {
		setPrincipal(c, userID, fullName, role, email)
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("Missing or invalid Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fmt.Errorf("Invalid Authorization header format")
	}
	return authHeader[len("Bearer "):], nil
}

func parseToken(tokenString string) (uint, string, string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, "", "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, "", "", "", fmt.Errorf("invalid token payload")
	}

	userID, ok := claims["userId"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, "", "", "", fmt.Errorf("invalid token payload")
	}
	fullName, _ := claims["fullName"].(string)
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)

	return uint(userID), fullName, role, email, nil
}

func setPrincipal(c *fiber.Ctx, userID uint, fullName, role, email string) {
	c.Locals("userId", userID)
	c.Locals("fullName", fullName)
	c.Locals("role", role)
	c.Locals("email", email)
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
