package catalog

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	repo *Repository
	log  *zap.SugaredLogger
}

func NewHandler(repo *Repository, log *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, log: log}
}

func RegisterRoutes(app *fiber.App, admin fiber.Router, h *Handler) {
	app.Get("/api/books", h.ListBooks)
	app.Post("/api/checkout", h.Checkout)

	admin.Post("/books", h.AddBook)
}

func (h *Handler) ListBooks(c *fiber.Ctx) error {
	books, err := h.repo.ListBooks(c.Context())
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(books)
}

func (h *Handler) AddBook(c *fiber.Ctx) error {
	var input AddBookInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	title := strings.TrimSpace(input.Title)
	pdfURL := strings.TrimSpace(input.PdfURL)
	if title == "" || pdfURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "title and PDF URL are required"})
	}

	book := &Book{Title: title, Price: input.Price, PdfURL: pdfURL}
	if level := strings.TrimSpace(input.Level); level != "" {
		book.Level = &level
	}

	if err := h.repo.AddBook(c.Context(), book); err != nil {
		return h.internal(c, err)
	}

	return c.JSON(fiber.Map{"message": "book saved"})
}

// Checkout records the order rows and nothing more: no token check, no
// payment. It exists so the storefront flow can be exercised end to end.
func (h *Handler) Checkout(c *fiber.Ctx) error {
	var input CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	if err := h.repo.RecordPurchases(c.Context(), input.Items); err != nil {
		return h.internal(c, err)
	}

	return c.JSON(fiber.Map{"message": "demo order recorded"})
}

func (h *Handler) internal(c *fiber.Ctx, err error) error {
	h.log.Errorw("catalog request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
}
