package delivery

import (
	"strconv"

	"civilregistry/config"
	"civilregistry/domain"
	"civilregistry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type userHandler struct {
	uc domain.UserUseCase
}

func NewUserHandler(app *fiber.App, useCase domain.UserUseCase) {
	handler := &userHandler{
		uc: useCase,
	}

	group := app.Group("/api/auth")
	group.Get("/me", middleware.AuthRequired(), handler.GetMe)
	group.Put("/profile", middleware.AuthRequired(), handler.UpdateProfile)
	group.Get("/users", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.GetAllUsers)
	group.Put("/users/:id", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.UpdateUser)
	group.Delete("/users/:id", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.DeleteUser)
}

func (h *userHandler) GetMe(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	user, err := h.uc.GetSelf(c.Context(), claims)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "GetMe")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetMe")
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *userHandler) GetAllUsers(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	users, err := h.uc.GetAllUsers(c.Context(), claims)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "GetAllUsers")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetAllUsers")
	return c.Status(fiber.StatusOK).JSON(users)
}

// UpdateProfile is self-service: profile fields, profile image and password.
// The response carries a re-issued token since the email inside the old one
// may have gone stale.
func (h *userHandler) UpdateProfile(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	var payload domain.ProfileUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if payload.Email != "" && !govalidator.IsEmail(payload.Email) {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please include a valid email",
		})
	}

	if payload.Password != "" && len(payload.Password) < 6 {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateProfile")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Password must be 6 or more characters",
		})
	}

	user, err := h.uc.UpdateProfile(c.Context(), claims, &payload)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "UpdateProfile")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		config.PrintLogInfo(&user.Email, fiber.StatusInternalServerError, "UpdateProfile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to generate token",
		})
	}

	config.PrintLogInfo(&user.Email, fiber.StatusOK, "UpdateProfile")
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

// UpdateUser is the administrative path: profile metadata and role only.
func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid user id",
		})
	}

	var payload domain.AdminUserUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if payload.Role != "" && !domain.ValidRole(payload.Role) {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid role",
		})
	}

	if payload.Email != "" && !govalidator.IsEmail(payload.Email) {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please include a valid email",
		})
	}

	user, err := h.uc.UpdateUser(c.Context(), claims, id, &payload)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "UpdateUser")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "UpdateUser")
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "DeleteUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid user id",
		})
	}

	if err := h.uc.DeleteUser(c.Context(), claims, id); err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "DeleteUser")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "DeleteUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User removed",
	})
}
