package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/infrastructure/i18n"
)

// Chaves do contexto do gin compartilhadas pelos middlewares
const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
	// RequestIDContextKey guarda o id de correlação da requisição
	RequestIDContextKey = "request_id"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "validation.required", map[string]interface{}{"Field": "name"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(LanguageContextKey)
	if !exists {
		return "en"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "en"
	}

	return langStr
}
