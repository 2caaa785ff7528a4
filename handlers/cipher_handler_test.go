package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cipher-backend/models"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewCipherHandler()
	api := router.Group("/api/v1")
	api.GET("/health", h.HealthCheck)
	ciphers := api.Group("/cipher")
	ciphers.GET("/algorithms", h.ListAlgorithms)
	ciphers.POST("/encrypt", h.Encrypt)
	ciphers.POST("/decrypt", h.Decrypt)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, req models.CipherRequest) (*httptest.ResponseRecorder, models.CipherResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)

	var resp models.CipherResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestListAlgorithms(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cipher/algorithms", nil)
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var infos []models.AlgorithmInfo
	if err := json.Unmarshal(w.Body.Bytes(), &infos); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(infos) != 4 {
		t.Fatalf("got %d algorithms, want 4", len(infos))
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	router := newTestRouter()

	cases := []models.CipherRequest{
		{Algorithm: "caesar", Text: "Attack at dawn!", Key: "7"},
		{Algorithm: "vigenere", Text: "Attack at dawn!", Key: "LEMON"},
		{Algorithm: "railfence", Text: "Attack at dawn!", Key: "4"},
	}

	for _, req := range cases {
		t.Run(req.Algorithm, func(t *testing.T) {
			w, resp := postJSON(t, router, "/api/v1/cipher/encrypt", req)
			if w.Code != http.StatusOK || !resp.Success {
				t.Fatalf("encrypt failed: status %d, message %q", w.Code, resp.Message)
			}

			back := req
			back.Text = resp.Result
			w, resp = postJSON(t, router, "/api/v1/cipher/decrypt", back)
			if w.Code != http.StatusOK || !resp.Success {
				t.Fatalf("decrypt failed: status %d, message %q", w.Code, resp.Message)
			}
			if resp.Result != req.Text {
				t.Fatalf("round trip = %q, want %q", resp.Result, req.Text)
			}
		})
	}
}

func TestEncryptRejectsEmptyText(t *testing.T) {
	router := newTestRouter()

	w, resp := postJSON(t, router, "/api/v1/cipher/encrypt", models.CipherRequest{
		Algorithm: "caesar",
		Key:       "3",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if resp.Success {
		t.Fatal("expected failure response for empty text")
	}
}

func TestEncryptRejectsMissingKeyword(t *testing.T) {
	router := newTestRouter()

	for _, algorithm := range []string{"vigenere", "playfair"} {
		t.Run(algorithm, func(t *testing.T) {
			w, resp := postJSON(t, router, "/api/v1/cipher/encrypt", models.CipherRequest{
				Algorithm: algorithm,
				Text:      "some text",
			})
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if resp.Success {
				t.Fatal("expected failure response for missing key")
			}
		})
	}
}

func TestEncryptRejectsUnknownAlgorithm(t *testing.T) {
	router := newTestRouter()

	w, _ := postJSON(t, router, "/api/v1/cipher/encrypt", models.CipherRequest{
		Algorithm: "rot13",
		Text:      "some text",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestNumericKeyFallsBackToDefault(t *testing.T) {
	router := newTestRouter()

	// Caesar with a non-numeric key behaves like the default shift of 3.
	w, resp := postJSON(t, router, "/api/v1/cipher/encrypt", models.CipherRequest{
		Algorithm: "caesar",
		Text:      "ABC",
		Key:       "not a number",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if resp.Result != "DEF" {
		t.Fatalf("Result = %q, want \"DEF\"", resp.Result)
	}
}
