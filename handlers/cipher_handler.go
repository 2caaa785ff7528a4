// Package handlers is made to handle requests
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"cipher-backend/cipher"
	"cipher-backend/models"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct{}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

// ListAlgorithms returns the supported ciphers and what kind of key each
// one expects.
func (h *CipherHandler) ListAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, []models.AlgorithmInfo{
		{
			ID:          string(cipher.AlgorithmCaesar),
			Name:        "Caesar",
			KeyType:     "integer shift",
			Description: fmt.Sprintf("Shifts each letter by a fixed amount (default %d)", cipher.DefaultShift),
		},
		{
			ID:          string(cipher.AlgorithmVigenere),
			Name:        "Vigenère",
			KeyType:     "keyword",
			Description: "Shifts each letter by the matching keyword letter",
		},
		{
			ID:          string(cipher.AlgorithmRailFence),
			Name:        "Rail Fence",
			KeyType:     "integer rail count",
			Description: fmt.Sprintf("Writes the text in a zigzag across rails (default %d)", cipher.DefaultRails),
		},
		{
			ID:          string(cipher.AlgorithmPlayfair),
			Name:        "Playfair",
			KeyType:     "keyword",
			Description: "Substitutes letter pairs using a keyword-seeded 5x5 square",
		},
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.transform(c, false)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.transform(c, true)
}

func (h *CipherHandler) transform(c *gin.Context, decrypt bool) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: "Input text is required",
		})
		return
	}

	algorithm := cipher.Algorithm(strings.ToLower(req.Algorithm))

	// The keyword ciphers treat an empty key as identity; reject it here
	// instead so the caller gets a warning rather than their text back.
	if requiresKeyword(algorithm) && strings.TrimSpace(req.Key) == "" {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("A key is required for the %s cipher", algorithm),
		})
		return
	}

	result, err := cipher.Transform(algorithm, req.Text, req.Key, decrypt)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Algorithm: string(algorithm),
		Result:    result,
	})
}

func requiresKeyword(a cipher.Algorithm) bool {
	return a == cipher.AlgorithmVigenere || a == cipher.AlgorithmPlayfair
}
