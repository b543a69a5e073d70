package delivery

import (
	"civilregistry/config"
	"civilregistry/domain"
	"civilregistry/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type requestHandler struct {
	uc domain.RequestUseCase
}

func NewRequestHandler(app *fiber.App, useCase domain.RequestUseCase) {
	handler := &requestHandler{
		uc: useCase,
	}

	group := app.Group("/api/requests")
	group.Post("/", middleware.AuthRequired(), handler.CreateRequest)
	group.Get("/", middleware.AuthRequired(), handler.GetMyRequests)
	group.Get("/all", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.GetAllRequests)
	group.Put("/:id", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.UpdateRequestStatus)
}

func (h *requestHandler) CreateRequest(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	var payload domain.CreateRequestPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if len(payload.Details) == 0 {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please add type and details",
		})
	}

	if !domain.ValidRequestType(payload.Type) {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "CreateRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request type",
		})
	}

	request, err := h.uc.CreateRequest(c.Context(), claims, &payload)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "CreateRequest")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusCreated, "CreateRequest")
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	requests, err := h.uc.GetMyRequests(c.Context(), claims)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "GetMyRequests")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetMyRequests")
	return c.Status(fiber.StatusOK).JSON(requests)
}

func (h *requestHandler) GetAllRequests(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	requests, err := h.uc.GetAllRequests(c.Context(), claims)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "GetAllRequests")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "GetAllRequests")
	return c.Status(fiber.StatusOK).JSON(requests)
}

func (h *requestHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)
	id := c.Params("id")

	var payload domain.RequestStatusUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateRequestStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if payload.Status != "" && !domain.ValidRequestStatus(payload.Status) {
		config.PrintLogInfo(&claims.Email, fiber.StatusBadRequest, "UpdateRequestStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid status",
		})
	}

	request, err := h.uc.UpdateRequestStatus(c.Context(), claims, id, &payload)
	if err != nil {
		status := errStatus(err)
		config.PrintLogInfo(&claims.Email, status, "UpdateRequestStatus")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&claims.Email, fiber.StatusOK, "UpdateRequestStatus")
	return c.Status(fiber.StatusOK).JSON(request)
}
