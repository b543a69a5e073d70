package delivery

import (
	"civilregistry/config"
	"civilregistry/domain"
	"civilregistry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type registrationHandler struct {
	uc domain.RegistrationUseCase
}

func NewRegistrationHandler(app *fiber.App, useCase domain.RegistrationUseCase) {
	handler := &registrationHandler{
		uc: useCase,
	}

	group := app.Group("/api/registrations")
	group.Get("/", middleware.AuthRequired(), handler.GetRegistrations)
	group.Post("/", middleware.AuthRequired(), handler.CreateRegistration)
	group.Put("/:id", middleware.AuthRequired(), handler.UpdateRegistration)
	group.Delete("/:id", middleware.AuthRequired(), handler.DeleteRegistration)
}

func (h *registrationHandler) GetRegistrations(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	registrations, err := h.uc.GetRegistrations(c.Context(), claims)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "GetRegistrations")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetRegistrations")
	return c.Status(fiber.StatusOK).JSON(registrations)
}

func (h *registrationHandler) CreateRegistration(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	var registration domain.Registration
	if err := c.BodyParser(&registration); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateRegistration")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&registration); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateRegistration")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if err := h.uc.CreateRegistration(c.Context(), claims, &registration); err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "CreateRegistration")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusCreated, "CreateRegistration")
	return c.Status(fiber.StatusCreated).JSON(registration)
}

func (h *registrationHandler) UpdateRegistration(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	var payload domain.RegistrationUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateRegistration")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if payload.Gender != "" && !domain.ValidGender(payload.Gender) {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateRegistration")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid gender",
		})
	}

	if payload.Status != "" && !domain.ValidRegistrationStatus(payload.Status) {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateRegistration")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid status",
		})
	}

	registration, err := h.uc.UpdateRegistration(c.Context(), claims, id, &payload)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "UpdateRegistration")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "UpdateRegistration")
	return c.Status(fiber.StatusOK).JSON(registration)
}

func (h *registrationHandler) DeleteRegistration(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	if err := h.uc.DeleteRegistration(c.Context(), claims, id); err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "DeleteRegistration")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "DeleteRegistration")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id": id,
	})
}
