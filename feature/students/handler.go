package students

import (
	"errors"
	"strconv"

	"student-registry/core/logger"
	"student-registry/feature/students/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler translates HTTP requests into service calls and service results
// into response bodies and status codes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the student routes and the health check.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")
	api.Get("/health", h.HandleHealth)

	group := api.Group("/students")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleHealth reports service liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /api/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleList returns all students, optionally filtered by a search query.
// @Summary List or search students
// @Description Lists all students newest-first. With q, returns only students whose name, surname, email or id number contains the query.
// @Tags students
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Student "Students"
// @Failure 400 {object} map[string]string "Malformed query"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/students [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	query := c.Query("q")
	if len(query) > MaxQueryLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query too long",
		})
	}

	records, err := h.service.List(c.Context(), query)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Listing students failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch students",
		})
	}
	return c.JSON(records)
}

// HandleGet returns a single student by id.
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student "Student"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/students/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	student, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to fetch student")
	}
	return c.JSON(student)
}

// HandleCreate registers a new student.
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.StudentPayload true "Student fields"
// @Success 201 {object} models.Student "Created student"
// @Failure 400 {object} map[string][]models.FieldError "Validation errors"
// @Failure 409 {object} map[string]string "Duplicate email or id number"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/students [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	payload, ok := parsePayload(c)
	if !ok {
		return nil // response already written
	}

	student, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.fail(c, err, "Failed to create student")
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// HandleUpdate replaces all mutable fields of a student.
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param student body models.StudentPayload true "Student fields"
// @Success 200 {object} models.Student "Updated student"
// @Failure 400 {object} map[string][]models.FieldError "Validation errors"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Duplicate email or id number"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/students/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	payload, ok := parsePayload(c)
	if !ok {
		return nil
	}

	student, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "Failed to update student")
	}
	return c.JSON(student)
}

// HandleDelete removes a student.
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]bool "Success flag"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/students/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"success": true})
}

// fail maps a service error to its response. Expected outcomes (validation,
// conflict, not found) carry actionable detail; anything else is logged and
// hidden behind a generic message.
func (h *Handler) fail(c *fiber.Ctx, err error, generic string) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Fields})
	}

	var cerr *ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": cerr.Message})
	}

	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Error(generic, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": generic})
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Student id must be a positive integer",
	})
}

func parsePayload(c *fiber.Ctx) (*models.StudentPayload, bool) {
	var payload models.StudentPayload
	if err := c.BodyParser(&payload); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
		return nil, false
	}
	return &payload, true
}
