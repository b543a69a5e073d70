package delivery

import (
	"civilregistry/config"
	"civilregistry/domain"
	"civilregistry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	uc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, useCase domain.AuthUseCase) {
	handler := &authHandler{
		uc: useCase,
	}

	group := app.Group("/api/auth")
	group.Post("/register", handler.Register)
	group.Post("/login", handler.Login)
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	var payload domain.RegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Register")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&payload.Email, fiber.StatusBadRequest, "Register")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if payload.Role != "" && !domain.ValidRole(payload.Role) {
		config.PrintLogInfo(&payload.Email, fiber.StatusBadRequest, "Register")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid role",
		})
	}

	user, err := h.uc.Register(c.Context(), &payload)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&payload.Email, status, "Register")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		config.PrintLogInfo(&user.Email, fiber.StatusInternalServerError, "Register")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to generate token",
		})
	}

	config.PrintLogInfo(&user.Email, fiber.StatusCreated, "Register")
	return c.Status(fiber.StatusCreated).JSON(domain.AuthResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	})
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var payload domain.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&payload.Email, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	user, err := h.uc.Login(c.Context(), &payload)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&payload.Email, status, "Login")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid credentials",
		})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		config.PrintLogInfo(&user.Email, fiber.StatusInternalServerError, "Login")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to generate token",
		})
	}

	config.PrintLogInfo(&user.Email, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(domain.AuthResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         user.Role,
		FullName:     user.FullName,
		BirthPlace:   user.BirthPlace,
		Address:      user.Address,
		ProfileImage: user.ProfileImage,
		Token:        token,
	})
}
