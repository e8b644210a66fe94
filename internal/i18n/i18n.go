// Package i18n provides internationalization support for the carton service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.unauthorized":             "Unauthorized",
			"error.api_key_required":         "API key is required",
			"error.invalid_api_key":          "Invalid API key",
			"error.forbidden":                "Forbidden",
			"error.not_found":                "Not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.conflict":                 "Conflict",
			"error.validation.quantity":      "quantity: must be a positive integer",
			"error.validation.dimensions":    "dimensions: width, depth and height must be positive numbers",
			"error.validation.field_mapping": "mapping: unknown field key",
			"error.no_arrangement":           "No suitable carton arrangement found",
			"error.timeout":                  "Request timed out",

			// Success messages
			"success.arrangement_solved": "Carton arrangement calculated successfully",
			"success.run_completed":      "Packing run completed successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":          "Requisição inválida",
			"error.invalid_request_body":     "Corpo da requisição inválido",
			"error.internal_error":           "Ocorreu um erro inesperado",
			"error.unauthorized":             "Não autorizado",
			"error.api_key_required":         "Chave de API é obrigatória",
			"error.invalid_api_key":          "Chave de API inválida",
			"error.forbidden":                "Proibido",
			"error.not_found":                "Não encontrado",
			"error.rate_limit_exceeded":      "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                 "Conflito",
			"error.validation.quantity":      "quantity: deve ser um inteiro positivo",
			"error.validation.dimensions":    "dimensions: largura, profundidade e altura devem ser números positivos",
			"error.validation.field_mapping": "mapping: chave de campo desconhecida",
			"error.no_arrangement":           "Nenhum arranjo de caixa adequado encontrado",
			"error.timeout":                  "A requisição expirou",

			// Success messages
			"success.arrangement_solved": "Arranjo de caixa calculado com sucesso",
			"success.run_completed":      "Execução de empacotamento concluída com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":          "Ongeldig verzoek",
			"error.invalid_request_body":     "Ongeldige aanvraag body",
			"error.internal_error":           "Er is een onverwachte fout opgetreden",
			"error.unauthorized":             "Niet geautoriseerd",
			"error.api_key_required":         "API-sleutel is vereist",
			"error.invalid_api_key":          "Ongeldige API-sleutel",
			"error.forbidden":                "Verboden",
			"error.not_found":                "Niet gevonden",
			"error.rate_limit_exceeded":      "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                 "Conflict",
			"error.validation.quantity":      "quantity: moet een positief geheel getal zijn",
			"error.validation.dimensions":    "dimensions: breedte, diepte en hoogte moeten positieve getallen zijn",
			"error.validation.field_mapping": "mapping: onbekende veldsleutel",
			"error.no_arrangement":           "Geen geschikte doosindeling gevonden",
			"error.timeout":                  "Verzoek verlopen",

			// Success messages
			"success.arrangement_solved": "Doosindeling succesvol berekend",
			"success.run_completed":      "Verpakkingsrun succesvol voltooid",
		},
	}
}
