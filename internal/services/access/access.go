// Package access реализует проверку учётных данных клиента.
//
// Запрос допускается, только если заголовок Authorization в точности совпадает
// с настроенным ключом, а User-Agent содержит ожидаемую подстроку.
// Причина отказа наружу не раскрывается: в обоих случаях возвращается apperr.ErrUnauthorized.
package access

import (
	"crypto/subtle"
	"strings"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
)

// Guard хранит настроенный ключ API и ожидаемую подстроку user-agent.
type Guard struct {
	apiKey    string
	userAgent string
}

// New создает Guard.
func New(apiKey, userAgent string) *Guard {
	return &Guard{
		apiKey:    apiKey,
		userAgent: userAgent,
	}
}

// Check проверяет пару (ключ, user-agent). Не имеет побочных эффектов.
func (g *Guard) Check(apiKey, userAgent string) error {
	if apiKey == "" || g.apiKey == "" {
		return apperr.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(g.apiKey)) != 1 {
		return apperr.ErrUnauthorized
	}
	if userAgent == "" || !strings.Contains(userAgent, g.userAgent) {
		return apperr.ErrUnauthorized
	}
	return nil
}
