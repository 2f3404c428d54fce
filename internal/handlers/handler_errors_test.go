package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/middleware"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

// stubRepo cobre só o que os handlers de leitura chamam; o resto vem da
// interface embutida e nunca é tocado nestes testes.
type stubRepo struct {
	domain.Repository
	salonErr  error
	clientErr error
}

func (s *stubRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if s.salonErr != nil {
		return nil, s.salonErr
	}
	return &models.Salon{ID: id, Name: "Studio Bela Vista"}, nil
}

func (s *stubRepo) FindClientByPhoneOrEmail(_ context.Context, _ uint, _, _ string) (*models.Client, error) {
	if s.clientErr != nil {
		return nil, s.clientErr
	}
	return &models.Client{ID: 1, Name: "Ana", Phone: "11988887777"}, nil
}

func readRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	salon := NewSalonHandler(repo, nil)
	client := NewClientHandler(repo, nil)

	g := r.Group("/salon/:salonId", middleware.TenantResolver())
	g.GET("/info", salon.Info)
	g.GET("/client", client.Get)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSalonInfo_MissingRowIs404(t *testing.T) {
	r := readRouter(&stubRepo{salonErr: gorm.ErrRecordNotFound})

	w := get(r, "/salon/1/info")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "salon_not_found")
}

func TestSalonInfo_RepositoryFailureIs500(t *testing.T) {
	r := readRouter(&stubRepo{salonErr: errors.New("dial tcp: connection refused")})

	w := get(r, "/salon/1/info")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
	// o detalhe da falha fica no log, nunca na resposta
	assert.NotContains(t, w.Body.String(), "dial tcp")
}

func TestClientGet_MissingRowIs404(t *testing.T) {
	r := readRouter(&stubRepo{clientErr: gorm.ErrRecordNotFound})

	w := get(r, "/salon/1/client?phone=11988887777")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "client_not_found")
}

func TestClientGet_RepositoryFailureIs500(t *testing.T) {
	r := readRouter(&stubRepo{clientErr: errors.New("dial tcp: connection refused")})

	w := get(r, "/salon/1/client?phone=11988887777")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}
