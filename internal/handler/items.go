package handler

import (
	"sort"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/agenttrace/woops/internal/pkg/woops"
)

// Item is a read-only sample resource
type Item struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ItemHandler serves a fixed set of items. Only GET and HEAD are allowed.
type ItemHandler struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Item
}

// NewItemHandler creates an item handler serving items
func NewItemHandler(items ...Item) *ItemHandler {
	h := &ItemHandler{items: make(map[uuid.UUID]Item, len(items))}
	for _, item := range items {
		h.items[item.ID] = item
	}
	return h
}

// List handles GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	h.mu.RLock()
	items := make([]Item, 0, len(h.items))
	for _, item := range h.items {
		items = append(items, item)
	}
	h.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return c.JSON(fiber.Map{
		"data":  items,
		"total": len(items),
	})
}

// Get handles GET /api/items/:id
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return woops.BadRequest("Invalid item ID", c.Params("id"))
	}

	h.mu.RLock()
	item, ok := h.items[id]
	h.mu.RUnlock()
	if !ok {
		return woops.NotFound("Item not found", fiber.Map{"id": id})
	}

	return c.JSON(item)
}

// MethodNotAllowed answers every other verb on the item routes
func (h *ItemHandler) MethodNotAllowed(c *fiber.Ctx) error {
	return woops.MethodNotAllowed("Items are read only", fiber.Map{"method": c.Method()},
		woops.AllowList{fiber.MethodGet, fiber.MethodHead})
}

// RegisterRoutes registers item routes
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	items := router.Group("/items")
	items.Get("/", h.List)
	items.Get("/:id", h.Get)

	for _, method := range []string{fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete} {
		items.Add(method, "/", h.MethodNotAllowed)
		items.Add(method, "/:id", h.MethodNotAllowed)
	}
}
