package http

import (
	"errors"

	"clubsite/internal/content/domain/model"
	"clubsite/internal/content/usecase"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/logger"
	"clubsite/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

// AdminHTTPHandler exposes the generic admin CRUD surface. One handler serves
// every registered resource; the schema drives columns, form fields and the
// read-only gate.
type AdminHTTPHandler struct {
	usecase usecase.AdminUsecaseInterface
	log     logger.Logger
}

// NewAdminHTTPHandler creates a new admin HTTP handler.
func NewAdminHTTPHandler(uc usecase.AdminUsecaseInterface, log logger.Logger) *AdminHTTPHandler {
	return &AdminHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("admin_http"),
	}
}

// RegisterRoutes registers the admin routes behind the auth middleware.
func (h *AdminHTTPHandler) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	admin := router.Group("/admin", protect)
	admin.Get("/resources", h.ListResources)
	admin.Get("/:resource", h.ListRows)
	admin.Post("/:resource", h.CreateRow)
	admin.Put("/:resource/:id", h.UpdateRow)
	admin.Delete("/:resource/:id", h.DeleteRow)
}

// columnJSON is the wire shape of a display column.
type columnJSON struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// fieldJSON is the wire shape of a form field descriptor.
type fieldJSON struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// listResponse carries everything the console needs to draw one table: the
// schema metadata, the mapped rows and the rendered display cells.
type listResponse struct {
	Resource string       `json:"resource"`
	Label    string       `json:"label"`
	ReadOnly bool         `json:"readOnly"`
	Columns  []columnJSON `json:"columns"`
	Fields   []fieldJSON  `json:"fields"`
	Rows     []model.Row  `json:"rows"`
	Display  [][]string   `json:"display"`
	Stale    bool         `json:"stale,omitempty"`
}

// ListResources returns the console tab catalog.
func (h *AdminHTTPHandler) ListResources(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tabs": h.usecase.Tabs()})
}

// ListRows returns the full, ordered, inbound-mapped collection for one
// resource together with its rendered display cells.
func (h *AdminHTTPHandler) ListRows(c *fiber.Ctx) error {
	resource := c.Params("resource")

	s, err := h.usecase.Schema(resource)
	if err != nil {
		return writeError(c, err)
	}
	rows, err := h.usecase.ListRows(c.Context(), resource)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(buildListResponse(s, rows, false))
}

// CreateRow decodes the submitted form record and inserts it, returning the
// re-fetched list. A validation failure is returned before any store call so
// the form can be corrected without losing entered data.
func (h *AdminHTTPHandler) CreateRow(c *fiber.Ctx) error {
	// Copied because the mutation event and audit log outlive the request.
	resource := fiberutils.CopyString(c.Params("resource"))

	var form model.Row
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	s, err := h.usecase.Schema(resource)
	if err != nil {
		return writeError(c, err)
	}
	result, err := h.usecase.CreateRow(c.Context(), resource, form)
	if err != nil {
		return writeError(c, err)
	}
	h.logMutation(c, "create", resource, form.ID())

	return c.Status(fiber.StatusCreated).JSON(buildListResponse(s, result.Rows, result.Stale))
}

// UpdateRow decodes the submitted form record and updates the row by id,
// returning the re-fetched list.
func (h *AdminHTTPHandler) UpdateRow(c *fiber.Ctx) error {
	resource := fiberutils.CopyString(c.Params("resource"))
	id := fiberutils.CopyString(c.Params("id"))

	var form model.Row
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	s, err := h.usecase.Schema(resource)
	if err != nil {
		return writeError(c, err)
	}
	result, err := h.usecase.UpdateRow(c.Context(), resource, id, form)
	if err != nil {
		return writeError(c, err)
	}
	h.logMutation(c, "update", resource, id)

	return c.JSON(buildListResponse(s, result.Rows, result.Stale))
}

// DeleteRow removes one row after explicit confirmation and returns the
// re-fetched list. Deletion without confirm=true is rejected; there is no
// undo on the other side of this call.
func (h *AdminHTTPHandler) DeleteRow(c *fiber.Ctx) error {
	resource := fiberutils.CopyString(c.Params("resource"))
	id := fiberutils.CopyString(c.Params("id"))

	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "deletion requires confirm=true",
		})
	}

	s, err := h.usecase.Schema(resource)
	if err != nil {
		return writeError(c, err)
	}
	result, err := h.usecase.DeleteRow(c.Context(), resource, id)
	if err != nil {
		return writeError(c, err)
	}
	h.logMutation(c, "delete", resource, id)

	return c.JSON(buildListResponse(s, result.Rows, result.Stale))
}

// buildListResponse assembles the table payload. Read-only resources carry no
// field list, which is how the console knows to suppress create/edit/delete.
func buildListResponse(s *model.ResourceSchema, rows []model.Row, stale bool) listResponse {
	columns := make([]columnJSON, len(s.DisplayColumns))
	for i, col := range s.DisplayColumns {
		columns[i] = columnJSON{Key: col.Key, Label: col.Label}
	}

	fields := make([]fieldJSON, 0, len(s.Fields))
	if !s.ReadOnly {
		for _, f := range s.Fields {
			fields = append(fields, fieldJSON{
				Key:      f.Key,
				Label:    f.Label,
				Type:     f.Type.String(),
				Options:  f.Options,
				Required: f.Required,
			})
		}
	}

	display := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(s.DisplayColumns))
		for j, col := range s.DisplayColumns {
			cells[j] = renderCell(col, row)
		}
		display[i] = cells
	}

	if rows == nil {
		rows = []model.Row{}
	}
	return listResponse{
		Resource: s.Name,
		Label:    s.Label,
		ReadOnly: s.ReadOnly,
		Columns:  columns,
		Fields:   fields,
		Rows:     rows,
		Display:  display,
		Stale:    stale,
	}
}

// logMutation records which operator touched which row.
func (h *AdminHTTPHandler) logMutation(c *fiber.Ctx, op, resource, id string) {
	actor, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil {
		actor = "unknown"
	}
	h.log.WithFields(map[string]interface{}{
		"op":       op,
		"resource": resource,
		"id":       id,
		"actor":    actor,
	}).Info("Admin mutation applied")
}

// renderCell produces one display cell. A custom renderer is the display
// authority for its column; array values join with ", ".
func renderCell(col model.Column, row model.Row) string {
	if col.Render != nil {
		return col.Render(row[col.Key])
	}
	if list := row.Strings(col.Key); list != nil {
		return model.JoinArray(list)
	}
	return row.String(col.Key)
}

// writeError maps application errors onto HTTP responses.
func writeError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := fiber.Map{"error": appErr.Message}
		if appErr.Code != "" {
			body["code"] = appErr.Code
		}
		return c.Status(appErr.HTTPCode).JSON(body)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
