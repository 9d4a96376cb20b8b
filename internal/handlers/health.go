package handlers

import "net/http"

// Health is the liveness endpoint; it reports nothing beyond process health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
