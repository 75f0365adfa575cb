package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const defaultGreetingName = "world"

type helloResponse struct {
	Hello string `json:"hello"`
}

func registerHelloRoutes(r *mux.Router) {
	r.HandleFunc("/hello", helloHandler).Methods("GET")
}

// resolveName falls back to "world" for a missing or blank name.
func resolveName(name string) string {
	if strings.TrimSpace(name) == "" {
		return defaultGreetingName
	}
	return name
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, helloResponse{
		Hello: resolveName(r.URL.Query().Get("name")),
	})
}
