package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trainerhub-app/config"
	"trainerhub-app/internal/domain/sitedoc"
	"trainerhub-app/internal/editor"

	"github.com/gin-gonic/gin"
)

type memStore struct{ doc *sitedoc.Document }

func (s *memStore) Load(context.Context) (*sitedoc.Document, error) { return s.doc.Clone(), nil }
func (s *memStore) Replace(_ context.Context, doc *sitedoc.Document) error {
	s.doc = doc.Clone()
	return nil
}

func contactRouter(doc *sitedoc.Document) *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(editor.Open(context.Background(), &memStore{doc: doc}, nil))
	r := gin.New()
	r.POST("/contact", Submit)
	return r
}

func postContact(r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitValidatesInput(t *testing.T) {
	r := contactRouter(sitedoc.Default())

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"missing name", map[string]string{"email": "a@b.co", "message": "hi"}},
		{"missing message", map[string]string{"name": "A", "email": "a@b.co"}},
		{"bad email", map[string]string{"name": "A", "email": "not-an-email", "message": "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postContact(r, tt.payload); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestSubmitWithoutRecipientConfigured(t *testing.T) {
	doc := sitedoc.Default()
	doc.Integrations.ContactTo = ""
	config.CONTACT_TO = ""
	r := contactRouter(doc)

	w := postContact(r, map[string]string{"name": "Anna", "email": "anna@example.com", "message": "hi"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
