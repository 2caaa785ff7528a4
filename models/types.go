// Package models contain needed models
package models

// CipherRequest represents a request to encrypt or decrypt text
type CipherRequest struct {
	Algorithm string `json:"algorithm" binding:"required,oneof=caesar vigenere railfence playfair"`
	Text      string `json:"text"`
	Key       string `json:"key"`
}

// CipherResponse represents the result of a cipher operation
type CipherResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Result    string `json:"result,omitempty"`
}

// AlgorithmInfo describes one supported cipher for the listing endpoint
type AlgorithmInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	KeyType     string `json:"key_type"`
	Description string `json:"description"`
}
