package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// TenantIDHeader заголовок, которым внешний слой передаёт тенанта
const TenantIDHeader = "X-Tenant-ID"

type contextKey string

const tenantIDKey contextKey = "tenantID"

// Auth middleware извлекает ID тенанта из заголовка X-Tenant-ID
// и кладёт его в контекст запроса. Запрос без заголовка отклоняется.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(TenantIDHeader)
		if tenantID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "отсутствует заголовок " + TenantIDHeader,
			})
			return
		}

		ctx := context.WithValue(r.Context(), tenantIDKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTenantID возвращает ID тенанта из контекста
func GetTenantID(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(string)
	return tenantID, ok
}
