package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"fortune-cloud/fortune"
)

const (
	generationErrorPrefix = "Error generating fortune: "
	invalidBodyMessage    = "Invalid request body"
	hiddenErrorDetail     = "internal error"
)

// fortuneResponse carries exactly one of fortune or error.
type fortuneResponse struct {
	Fortune string `json:"fortune,omitempty"`
	Error   string `json:"error,omitempty"`
}

type fortuneHandler struct {
	svc          *fortune.Service
	exposeErrors bool
}

func newFortuneHandler(svc *fortune.Service, exposeErrors bool) *fortuneHandler {
	return &fortuneHandler{svc: svc, exposeErrors: exposeErrors}
}

func registerFortuneRoutes(r *mux.Router, h *fortuneHandler) {
	r.HandleFunc("/fortune", h.generate).Methods("POST")
}

func (h *fortuneHandler) generate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	entry := log.WithField("request_id", requestIDFromContext(r.Context()))
	entry.Debug("fortune request received")

	// A nil pointer after decoding means the body was empty or JSON null.
	var req *fortune.ThoughtsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		entry.WithError(err).Info("fortune request body rejected")
		writeJSON(w, http.StatusBadRequest, fortuneResponse{Error: invalidBodyMessage})
		return
	}

	if req != nil {
		entry = entry.WithFields(logrus.Fields{
			"thoughts": fortune.Truncate(req.Thoughts),
			"source":   h.svc.Source(),
		})
	}

	outcome, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		var vErr *fortune.ValidationError
		if errors.As(err, &vErr) {
			entry.Info("fortune request invalid")
			writeJSON(w, http.StatusBadRequest, fortuneResponse{Error: vErr.Message})
			return
		}

		fortunesGenerated.WithLabelValues(string(outcome.Source), "error").Inc()
		entry.WithError(err).Error("fortune generation failed")
		writeJSON(w, http.StatusInternalServerError, fortuneResponse{Error: h.generationErrorMessage(err)})
		return
	}

	fortunesGenerated.WithLabelValues(string(outcome.Source), "ok").Inc()
	entry.Info("fortune generated")
	writeJSON(w, http.StatusOK, fortuneResponse{Fortune: outcome.Fortune})
}

// generationErrorMessage is the single place that decides whether upstream
// error text reaches the client.
func (h *fortuneHandler) generationErrorMessage(err error) string {
	if !h.exposeErrors {
		return generationErrorPrefix + hiddenErrorDetail
	}
	return generationErrorPrefix + err.Error()
}
