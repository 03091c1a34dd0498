package handler

import (
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/agenttrace/woops/internal/pkg/woops"
)

// sendFunc sends the cataloged error for one status through a responder
type sendFunc func(w *woops.Responder, message string) error

// CatalogEntry describes one status of the error catalog
type CatalogEntry struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// CatalogHandler lets clients trigger every cataloged error response
type CatalogHandler struct {
	realm   string
	senders map[int]sendFunc
}

// NewCatalogHandler creates a catalog handler.
// realm is advertised in the challenge of the 401 response.
func NewCatalogHandler(realm string) *CatalogHandler {
	h := &CatalogHandler{realm: realm}
	h.senders = map[int]sendFunc{
		fiber.StatusBadRequest: func(w *woops.Responder, m string) error { return w.BadRequest(m) },
		fiber.StatusUnauthorized: func(w *woops.Responder, m string) error {
			return w.Unauthorized(m, "Bearer", woops.Params("realm", h.realm))
		},
		fiber.StatusPaymentRequired: func(w *woops.Responder, m string) error { return w.PaymentRequired(m) },
		fiber.StatusForbidden:       func(w *woops.Responder, m string) error { return w.Forbidden(m) },
		fiber.StatusNotFound:        func(w *woops.Responder, m string) error { return w.NotFound(m) },
		fiber.StatusMethodNotAllowed: func(w *woops.Responder, m string) error {
			return w.MethodNotAllowed(m, nil, woops.AllowList{fiber.MethodGet, fiber.MethodHead})
		},
		fiber.StatusNotAcceptable:                func(w *woops.Responder, m string) error { return w.NotAcceptable(m) },
		fiber.StatusProxyAuthRequired:            func(w *woops.Responder, m string) error { return w.ProxyAuthRequired(m) },
		fiber.StatusRequestTimeout:               func(w *woops.Responder, m string) error { return w.ClientTimeout(m) },
		fiber.StatusConflict:                     func(w *woops.Responder, m string) error { return w.Conflict(m) },
		fiber.StatusGone:                         func(w *woops.Responder, m string) error { return w.ResourceGone(m) },
		fiber.StatusLengthRequired:               func(w *woops.Responder, m string) error { return w.LengthRequired(m) },
		fiber.StatusPreconditionFailed:           func(w *woops.Responder, m string) error { return w.PreconditionFailed(m) },
		fiber.StatusRequestEntityTooLarge:        func(w *woops.Responder, m string) error { return w.EntityTooLarge(m) },
		fiber.StatusRequestURITooLong:            func(w *woops.Responder, m string) error { return w.URITooLong(m) },
		fiber.StatusUnsupportedMediaType:         func(w *woops.Responder, m string) error { return w.UnsupportedMediaType(m) },
		fiber.StatusRequestedRangeNotSatisfiable: func(w *woops.Responder, m string) error { return w.RangeNotSatisfiable(m) },
		fiber.StatusExpectationFailed:            func(w *woops.Responder, m string) error { return w.ExpectationFailed(m) },
		fiber.StatusTeapot:                       func(w *woops.Responder, m string) error { return w.Teapot(m) },
		fiber.StatusUnprocessableEntity:          func(w *woops.Responder, m string) error { return w.BadData(m) },
		fiber.StatusLocked:                       func(w *woops.Responder, m string) error { return w.Locked(m) },
		fiber.StatusFailedDependency:             func(w *woops.Responder, m string) error { return w.FailedDependency(m) },
		fiber.StatusPreconditionRequired:         func(w *woops.Responder, m string) error { return w.PreconditionRequired(m) },
		fiber.StatusTooManyRequests:              func(w *woops.Responder, m string) error { return w.TooManyRequests(m) },
		fiber.StatusUnavailableForLegalReasons:   func(w *woops.Responder, m string) error { return w.Illegal(m) },
		fiber.StatusInternalServerError:          func(w *woops.Responder, m string) error { return w.Internal(m, nil) },
		fiber.StatusNotImplemented:               func(w *woops.Responder, m string) error { return w.NotImplemented(m) },
		fiber.StatusBadGateway:                   func(w *woops.Responder, m string) error { return w.BadGateway(m) },
		fiber.StatusServiceUnavailable:           func(w *woops.Responder, m string) error { return w.ServerUnavailable(m) },
		fiber.StatusGatewayTimeout:               func(w *woops.Responder, m string) error { return w.GatewayTimeout(m) },
	}
	return h
}

// List handles GET /api/errors
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	entries := make([]CatalogEntry, 0, len(h.senders))
	for status := range h.senders {
		entries = append(entries, CatalogEntry{Status: status, Error: woops.StatusText(status)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Status < entries[j].Status })

	return c.JSON(fiber.Map{
		"data": entries,
	})
}

// Trigger handles GET /api/errors/:status.
// The optional message query parameter replaces the default message.
func (h *CatalogHandler) Trigger(c *fiber.Ctx) error {
	w, err := RequireWoops(c)
	if err != nil {
		return err
	}

	status, err := strconv.Atoi(c.Params("status"))
	if err != nil {
		return w.BadRequest("status must be a number", c.Params("status"))
	}

	send, ok := h.senders[status]
	if !ok {
		return w.NotFound("no cataloged error for status "+strconv.Itoa(status), status)
	}

	message := c.Query("message", woops.StatusText(status))
	return send(w, message)
}

// BadImplementation handles GET /api/errors/developer
func (h *CatalogHandler) BadImplementation(c *fiber.Ctx) error {
	w, err := RequireWoops(c)
	if err != nil {
		return err
	}
	return w.BadImplementation(c.Query("message", "handler reached an impossible state"))
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	errors := router.Group("/errors")
	errors.Get("/", h.List)
	errors.Get("/developer", h.BadImplementation)
	errors.Get("/:status", h.Trigger)
}
