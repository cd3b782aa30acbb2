package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/infrastructure/i18n"
	"github.com/rafabene/vendas-api/internal/infrastructure/logging"
)

func TestErrorResponder_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	i18nService, err := i18n.NewEmbeddedService("en")
	require.NoError(t, err)
	responder := newErrorResponder(logging.NewWriterLogger(io.Discard, "error"))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"nome obrigatório embrulhado vira 400", fmt.Errorf("create client: %w", domainerrors.ErrNameRequired),
			http.StatusBadRequest, "Name is required."},
		{"descrição obrigatória vira 400", domainerrors.ErrDescriptionRequired,
			http.StatusBadRequest, "Description is required."},
		{"username obrigatório vira 400", fmt.Errorf("register: %w", domainerrors.ErrUsernameRequired),
			http.StatusBadRequest, "Username is required."},
		{"cliente inexistente vira 404", fmt.Errorf("get client: %w", domainerrors.ErrClientNotFound),
			http.StatusNotFound, "Client not found."},
		{"venda duplicada vira 409", domainerrors.ErrSaleAlreadyExists,
			http.StatusConflict, ""},
		{"erro desconhecido vira 500", errors.New("conexão perdida"),
			http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/clients", nil)
			c.Set(dto.I18nServiceContextKey, i18nService)
			c.Set(dto.LanguageContextKey, "en")

			responder.respond(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantDetail == "" {
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body["detail"])
		})
	}
}
