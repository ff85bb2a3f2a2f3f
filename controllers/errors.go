package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"faculty-performance-api/services"
)

// respondError maps service errors onto the API's status taxonomy. Every
// error body is {"message": string}; storage failures stay generic and are
// only detailed in the server log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidYear):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year"})
	case errors.Is(err, services.ErrScoreOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Scores must be between 0 and 100"})
	case errors.Is(err, services.ErrDuplicateID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		// Same body for unknown id and wrong secret, no enumeration.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No submission found"})
	case errors.Is(err, services.ErrSubmissionFinal):
		c.JSON(http.StatusConflict, gin.H{"message": "Submission already finalized"})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
