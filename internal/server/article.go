package server

import (
	"net/http"

	articledomain "github.com/amanahworks/folio/internal/article/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListPublishedArticles(c *gin.Context) {
	pageSize, err := parsePageSize(c.Query("page_size"))
	if err != nil {
		AbortWithError(c, newValidationError("page_size", "invalid_page_size", "page_size must be a positive integer"))
		return
	}

	resp, err := s.articlesvc.List(c.Request.Context(), articledomain.ListArticleRequest{
		PageToken:     c.Query("page_token"),
		PageSize:      pageSize,
		PublishedOnly: true,
		Tag:           c.Query("tag"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetArticle(c *gin.Context) {
	article, err := s.articlesvc.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) AdminListArticles(c *gin.Context) {
	pageSize, err := parsePageSize(c.Query("page_size"))
	if err != nil {
		AbortWithError(c, newValidationError("page_size", "invalid_page_size", "page_size must be a positive integer"))
		return
	}

	resp, err := s.articlesvc.List(c.Request.Context(), articledomain.ListArticleRequest{
		PageToken: c.Query("page_token"),
		PageSize:  pageSize,
		Tag:       c.Query("tag"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) AdminGetArticle(c *gin.Context) {
	article, err := s.articlesvc.GetBySlug(c.Request.Context(), c.Param("slug"), true)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) CreateArticle(c *gin.Context) {
	var req articledomain.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	article, err := s.articlesvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (s *Server) UpdateArticle(c *gin.Context) {
	var req articledomain.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	article, err := s.articlesvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

type setPublishedRequest struct {
	Published *bool `json:"published" binding:"required"`
}

func (s *Server) SetArticlePublished(c *gin.Context) {
	var req setPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Published == nil {
		AbortWithError(c, newValidationError("published", "required", "published flag is required"))
		return
	}

	article, err := s.articlesvc.SetPublished(c.Request.Context(), c.Param("id"), *req.Published)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (s *Server) DeleteArticle(c *gin.Context) {
	if err := s.articlesvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
