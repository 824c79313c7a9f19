package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	resp := request(t, "POST", "/api/auth/register", map[string]string{
		"email":       "student@example.com",
		"password":    "password123",
		"displayName": "Test Student",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	assert.NotEmpty(t, result["token"])
	assert.NotEmpty(t, result["user"])
}

func TestRegisterRejectsEmptyCredentials(t *testing.T) {
	resp := request(t, "POST", "/api/auth/register", map[string]string{
		"email": "", "password": "",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	resp := request(t, "POST", "/api/auth/login", map[string]string{
		"email":    "student@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	assert.NotEmpty(t, result["token"])
	jwtToken = result["token"].(string)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	saved := jwtToken
	jwtToken = ""
	defer func() { jwtToken = saved }()

	resp := request(t, "POST", "/api/auth/login", map[string]string{
		"email":    "student@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	saved := jwtToken
	jwtToken = ""
	defer func() { jwtToken = saved }()

	resp := request(t, "GET", "/api/profile", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisteredUserHasDefaultProfile(t *testing.T) {
	resp := request(t, "GET", "/api/profile", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "student@example.com", data["email"])
	assert.Equal(t, "Test Student", data["displayName"])
	assert.Equal(t, "", data["course"])
}
