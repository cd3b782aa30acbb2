package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação.
// allowedOrigins é uma lista separada por vírgulas; "*" libera qualquer origem.
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	origins := make([]string, 0)
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			config.AllowAllOrigins = true
			origins = nil
			break
		}
		// gin-contrib/cors exige o esquema na origem
		if strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			origins = append(origins, o)
		}
	}

	if !config.AllowAllOrigins {
		if len(origins) == 0 {
			// sem origens configuradas nenhuma requisição cross-origin é aceita
			config.AllowOriginFunc = func(string) bool { return false }
		} else {
			config.AllowOrigins = origins
			config.AllowCredentials = true
		}
	}

	return cors.New(config)
}
