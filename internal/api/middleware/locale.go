package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/campusmind/campusmind/internal/i18n"
)

const localeKey = "locale"

// Locale resolves the request language from the lang query parameter or
// the Accept-Language header and stores it in the gin context.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.DetermineLocale(
			c.Query("lang"),
			c.GetHeader("Accept-Language"),
			i18n.Supported,
			i18n.Default,
		)
		c.Set(localeKey, locale)
		c.Next()
	}
}

// LocaleFrom retrieves the locale stored by Locale
func LocaleFrom(c *gin.Context) string {
	if v, ok := c.Get(localeKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return i18n.Default
}
