package server

import (
	"net/http"

	testimonialdomain "github.com/amanahworks/folio/internal/testimonial/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListVisibleTestimonials(c *gin.Context) {
	testimonials, err := s.testimonialsvc.List(c.Request.Context(), true)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (s *Server) AdminListTestimonials(c *gin.Context) {
	testimonials, err := s.testimonialsvc.List(c.Request.Context(), false)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (s *Server) CreateTestimonial(c *gin.Context) {
	var req testimonialdomain.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	testimonial, err := s.testimonialsvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

func (s *Server) UpdateTestimonial(c *gin.Context) {
	var req testimonialdomain.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	testimonial, err := s.testimonialsvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

func (s *Server) DeleteTestimonial(c *gin.Context) {
	if err := s.testimonialsvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
