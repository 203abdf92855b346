package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://handicraft-businesses-server.vercel.app",
	"https://handicraft-businesses.netlify.app",
}

func CORSMiddleware(originURL string, allowCredentials bool) gin.HandlerFunc {
	allowedOrigins := append([]string{}, defaultAllowedOrigins...)
	if originURL != "" {
		allowedOrigins = append(allowedOrigins, originURL)
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
	})
}
