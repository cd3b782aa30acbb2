package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httphandlers "github.com/rafabene/vendas-api/internal/handlers/http"
	"github.com/rafabene/vendas-api/internal/infrastructure/i18n"
	"github.com/rafabene/vendas-api/internal/infrastructure/logging"
	"github.com/rafabene/vendas-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/vendas-api/internal/infrastructure/security"
	"github.com/rafabene/vendas-api/internal/services"
	"github.com/rafabene/vendas-api/internal/testutil/testdb"
)

// testAPI é o roteador completo sobre SQLite em memória
type testAPI struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)
	logger := logging.NewWriterLogger(io.Discard, "error")

	i18nService, err := i18n.NewEmbeddedService("en")
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	phoneRepo := postgres.NewPhoneNumberRepository(db)
	productRepo := postgres.NewProductRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	uow := postgres.NewUnitOfWork(db)
	hasher := security.NewBcryptHasher()
	tokens := security.NewJWTService("test-secret", 24*time.Hour, "vendas-api")

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            "test",
		BaseURL:        "http://api.test",
		AllowedOrigins: "*",
		DB:             db,
		Logger:         logger,
		I18n:           i18nService,
	}, httphandlers.Services{
		Auth:        services.NewAuthService(userRepo, hasher, tokens, logger),
		User:        services.NewUserService(userRepo, hasher, logger),
		Client:      services.NewClientService(clientRepo, addressRepo, phoneRepo, saleRepo, uow, logger),
		Address:     services.NewAddressService(clientRepo, addressRepo, logger),
		PhoneNumber: services.NewPhoneNumberService(clientRepo, phoneRepo, logger),
		Product:     services.NewProductService(productRepo, logger),
		Sale:        services.NewSaleService(clientRepo, productRepo, saleRepo, uow, logger),
	})

	return &testAPI{t: t, router: router}
}

// authenticated cadastra e loga alice, guardando o token para as próximas chamadas
func (a *testAPI) authenticated() *testAPI {
	a.t.Helper()

	w := a.do(http.MethodPost, "/register", map[string]any{
		"username": "alice", "email": "alice@x.com", "password": "pw123",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/login", map[string]any{"email": "alice@x.com", "password": "pw123"})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	decode(a.t, w, &login)
	require.NotEmpty(a.t, login.Token)
	a.token = login.Token
	return a
}

func (a *testAPI) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// create faz um POST esperando 201 e devolve o id do recurso criado
func (a *testAPI) create(path string, body any) uint {
	a.t.Helper()

	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	decode(a.t, w, &resp)
	require.NotZero(a.t, resp.Data.ID)
	return resp.Data.ID
}

// createSale registra uma venda; o id vem em data.sale.id
func (a *testAPI) createSale(clientID, productID uint, quantity int) uint {
	a.t.Helper()

	w := a.do(http.MethodPost, "/sales", map[string]any{
		"clientId": clientID, "productId": productID, "quantity": quantity,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Sale struct {
				ID uint `json:"id"`
			} `json:"sale"`
		} `json:"data"`
	}
	decode(a.t, w, &resp)
	require.NotZero(a.t, resp.Data.Sale.ID)
	return resp.Data.Sale.ID
}

type problem struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	Instance  string `json:"instance"`
	RequestID string `json:"requestId"`
	Errors    []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Tag     string `json:"tag"`
	} `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) problem {
	t.Helper()
	require.Contains(t, w.Header().Get("Content-Type"), "application/problem+json")
	var p problem
	decode(t, w, &p)
	return p
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
