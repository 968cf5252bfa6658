// File: internal/middleware/recovery.go
package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// RecoverPanic turns a panicking handler into a 500 JSON response instead
// of a dropped connection.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[PANIC] %v", err)

				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Der opstod en intern fejl."})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
