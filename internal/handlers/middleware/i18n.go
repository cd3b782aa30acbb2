package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/infrastructure/i18n"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header (preferência do browser)
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		// 1. Verificar query parameter
		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		// 2. Se não encontrou, verificar Accept-Language header
		if lang == "" {
			acceptLang := c.GetHeader("Accept-Language")
			lang = m.parseAcceptLanguage(acceptLang)
		}

		// 3. Se ainda não encontrou, usar idioma padrão
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(dto.LanguageContextKey, lang)
		c.Set(dto.I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o melhor idioma suportado.
// Os pesos (q=) são ignorados; vale a ordem do header.
// Exemplo: "pt,en-US;q=0.8,en;q=0.7" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}
		if lang == "" || lang == "*" {
			continue
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		// mesma língua em outra região: pt, pt-PT -> pt-BR; en-US -> en
		if match := m.matchBase(baseLanguage(lang)); match != "" {
			return match
		}
	}

	return ""
}

func (m *I18nMiddleware) matchBase(base string) string {
	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.EqualFold(baseLanguage(supported), base) {
			return supported
		}
	}
	return ""
}

func baseLanguage(lang string) string {
	if idx := strings.Index(lang, "-"); idx != -1 {
		return lang[:idx]
	}
	return lang
}
