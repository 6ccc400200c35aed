package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/http/middleware"
	"bebeboutique.mx/app/internal/modules/content"
	"bebeboutique.mx/app/internal/shared/apperr"
)

// ContentHandler serves the marketing surface: blog and about.
type ContentHandler struct {
	Repo *content.Repo
}

func NewContentHandler(repo *content.Repo) *ContentHandler {
	return &ContentHandler{Repo: repo}
}

// ListPosts handles GET /api/blog
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.Repo.ListPublished(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	// listing omits bodies
	for i := range posts {
		posts[i].Body = ""
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost handles GET /api/blog/:slug
func (h *ContentHandler) GetPost(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	post, err := h.Repo.GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Post not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, post)
}

// About handles GET /api/pages/about
func (h *ContentHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Sobre Nosotros",
		"body": "Ropa para bebé hecha con amor: materiales suaves, " +
			"hipoalergénicos y certificados, diseñados para cada etapa " +
			"del crecimiento de tu pequeño tesoro.",
		"values": []gin.H{
			{"name": "100% Seguro", "detail": "Materiales hipoalergénicos y certificados"},
			{"name": "Hecho con Amor", "detail": "Cada prenda diseñada pensando en tu bebé"},
			{"name": "Envío Rápido", "detail": "Entrega en 24-48 horas en CDMX"},
		},
	})
}
