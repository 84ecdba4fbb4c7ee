package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"mondaynightpoker-handeval/pkg/handrank"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version   string
	evaluator *handrank.Evaluator
}

// NewMux returns a new HTTP mux
func NewMux(version string, evaluator *handrank.Evaluator) *Mux {
	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		evaluator: evaluator,
	}

	r := this.Router
	r.Use(requestIDMiddleware)

	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/card-ranks").Handler(this.postCardRanks())
	r.Methods(http.MethodPost).Path("/hand-rank").Handler(this.postHandRank())
	r.Methods(http.MethodPost).Path("/best-hand").Handler(this.postBestHand())
	r.Methods(http.MethodPost).Path("/best-wild-hand").Handler(this.postBestWildHand())

	return this
}

// requestIDMiddleware keeps a valid incoming request id or generates a new one
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// logger returns a logger tagged with the request id
func logger(r *http.Request) logrus.FieldLogger {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return logrus.WithField("requestID", id)
}
