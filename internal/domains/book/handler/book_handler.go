package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-api/internal/domains/book"
	"bookstore-api/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Index(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list books")
		return
	}

	items := make([]book.BookListItem, 0, len(books))
	for i := range books {
		items = append(items, books[i].ToListItem())
	}

	c.JSON(http.StatusOK, items)
}

// ════════════════════════════════════════════════════════════════
// SHOW: GET /books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id format")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		status := book.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.InternalServerError(c, "failed to get book")
		} else {
			response.ErrorResponse(c, status, book.ToErrorCode(err), err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, b.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /books/create
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, book.ErrStore) {
			response.InternalServerError(c, "failed to create book")
		} else {
			// Anything else coming out of the service is a
			// validation failure.
			response.BadRequest(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: POST /books/delete
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	var req book.DeleteBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.BadRequest(c, "invalid book id format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, "failed to delete book")
		return
	}

	c.String(http.StatusOK, "Book deleted successfully!\n")
}
