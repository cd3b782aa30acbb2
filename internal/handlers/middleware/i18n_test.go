package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	service, err := i18n.NewEmbeddedService("en")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}

	return service
}

func detectedLanguage(t *testing.T, m *I18nMiddleware, target, acceptLanguage string) string {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("GET", target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	c.Request = req

	m.DetectLanguage()(c)

	lang, exists := c.Get(dto.LanguageContextKey)
	if !exists {
		t.Fatal("idioma não foi definido no contexto")
	}
	return lang.(string)
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewI18nMiddleware(setupTestI18n(t))

	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		expected       string
	}{
		{"detecta idioma do query parameter", "/?lang=pt-BR", "", "pt-BR"},
		{"detecta idioma do Accept-Language header", "/", "pt-BR,en;q=0.9", "pt-BR"},
		{"usa idioma padrão quando nenhum é especificado", "/", "", "en"},
		{"query parameter tem prioridade sobre Accept-Language", "/?lang=en", "pt-BR", "en"},
		{"ignora query parameter inválido e usa Accept-Language", "/?lang=fr", "pt-BR", "pt-BR"},
		{"idioma sem suporte cai no padrão", "/", "fr,de;q=0.9", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang := detectedLanguage(t, middleware, tt.target, tt.acceptLanguage)
			if lang != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, lang)
			}
		})
	}

	t.Run("define serviço i18n no contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		middleware.DetectLanguage()(c)

		service, exists := c.Get(dto.I18nServiceContextKey)
		if !exists {
			t.Fatal("serviço i18n não foi definido no contexto")
		}

		if service == nil {
			t.Error("serviço i18n é nulo")
		}
	})
}

func TestI18nMiddleware_parseAcceptLanguage(t *testing.T) {
	middleware := NewI18nMiddleware(setupTestI18n(t))

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{
			name:       "idioma único suportado",
			acceptLang: "pt-BR",
			expected:   "pt-BR",
		},
		{
			name:       "múltiplos idiomas, segundo é suportado",
			acceptLang: "fr,pt-BR;q=0.9,en;q=0.8",
			expected:   "pt-BR",
		},
		{
			name:       "língua base casa com a variante regional suportada",
			acceptLang: "pt",
			expected:   "pt-BR",
		},
		{
			name:       "região diferente da mesma língua",
			acceptLang: "en-US,pt;q=0.5",
			expected:   "en",
		},
		{
			name:       "curinga é ignorado",
			acceptLang: "*",
			expected:   "",
		},
		{
			name:       "nenhum idioma suportado",
			acceptLang: "fr,de;q=0.9",
			expected:   "",
		},
		{
			name:       "header vazio",
			acceptLang: "",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.parseAcceptLanguage(tt.acceptLang)
			if result != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, result)
			}
		})
	}
}

func TestI18nMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware := NewI18nMiddleware(setupTestI18n(t))

	router := gin.New()
	router.Use(middleware.DetectLanguage())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "success.client.created")})
	})

	t.Run("integração completa com português", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test?lang=pt-BR", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}

		expected := `{"message":"Cliente cadastrado com sucesso!"}`
		if w.Body.String() != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
		}
		if got := w.Header().Get("Content-Language"); got != "pt-BR" {
			t.Errorf("esperava Content-Language pt-BR, obteve '%s'", got)
		}
	})

	t.Run("integração completa com inglês via Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Language", "en-GB")
		router.ServeHTTP(w, req)

		expected := `{"message":"Client registered successfully!"}`
		if w.Body.String() != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, w.Body.String())
		}
	})
}
