package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors
// ════════════════════════════════════════════════════════════════

// Index returns every author in insertion order. The list view is a
// bare JSON array of {name, nationality}.
func (h *AuthorHandler) Index(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list authors")
		return
	}

	items := make([]author.AuthorListItem, 0, len(authors))
	for i := range authors {
		items = append(items, authors[i].ToListItem())
	}

	c.JSON(http.StatusOK, items)
}

// ════════════════════════════════════════════════════════════════
// SHOW: GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id format")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		status := author.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.InternalServerError(c, "failed to get author")
		} else {
			response.ErrorResponse(c, status, author.ToErrorCode(err), err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors/create
// ════════════════════════════════════════════════════════════════

// Create returns the created entity, id included, so callers can use
// the generated identifier for later reads and deletes.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, author.ErrStore) {
			response.InternalServerError(c, "failed to create author")
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
// DELETE: POST /authors/delete
// ════════════════════════════════════════════════════════════════

// Delete rejects malformed ids outright. Substituting a zero id on a
// parse failure could delete a row the caller never named.
func (h *AuthorHandler) Delete(c *gin.Context) {
	var req author.DeleteAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.BadRequest(c, "invalid author id format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.InternalServerError(c, "failed to delete author")
		return
	}

	c.String(http.StatusOK, "Author deleted successfully!\n")
}

// ════════════════════════════════════════════════════════════════
// SEED: GET /seed_authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Seed(c *gin.Context) {
	count, err := h.service.Seed(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to seed authors")
		return
	}

	c.JSON(http.StatusOK, gin.H{"seeded": count})
}
