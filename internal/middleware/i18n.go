// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/i18n"
)

const defaultLanguage = "en"

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolveLanguage(c.GetHeader("Accept-Language"), i18n.GetSupportedLanguages()))
		c.Next()
	}
}

// resolveLanguage returns the first Accept-Language entry that maps onto a
// loaded locale, e.g. "fr,zh-TW;q=0.9,en;q=0.8" -> "zh_TW".
func resolveLanguage(header string, supported []string) string {
	available := make(map[string]bool, len(supported))
	for _, lang := range supported {
		available[lang] = true
	}

	for _, entry := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(entry, ";")[0])
		if tag == "" {
			continue
		}
		for _, candidate := range localeCandidates(tag) {
			if available[candidate] {
				return candidate
			}
		}
	}

	return defaultLanguage
}

// localeCandidates lists locale names for a language tag, most specific first.
func localeCandidates(tag string) []string {
	switch tag {
	case "zh-Hant", "zh-HK", "zh-MO":
		return []string{"zh_TW"}
	case "zh-Hans", "zh-SG":
		return []string{"zh_CN"}
	}

	locale := strings.ReplaceAll(tag, "-", "_")
	base, _, found := strings.Cut(locale, "_")
	if !found {
		return []string{locale}
	}
	return []string{locale, base}
}
