package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notifyd/internal/bus"
	"notifyd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
// *bus.Notifier satisfies it.
type Service interface {
	// TryPublish reports ok=false when the notifier was closed before delivery.
	TryPublish(topic bus.Topic, payload bus.Payload) (int, bool)
	Topics() []bus.TopicInfo
	Closed() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(corsOptions()))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/publish", publishHandler(svc))

	r.Get("/topics", func(w http.ResponseWriter, r *http.Request) {
		infos := svc.Topics()
		resp := types.TopicsResponse{Topics: make([]types.TopicStatus, 0, len(infos))}
		for _, ti := range infos {
			resp.Topics = append(resp.Topics, types.TopicStatus{Topic: string(ti.Topic), Listeners: ti.Listeners})
		}
		writeJSON(w, http.StatusOK, resp)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if !svc.Closed() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("closed"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// decodePublish validates and decodes a /publish request body.
func decodePublish(w http.ResponseWriter, r *http.Request) (types.PublishRequest, error) {
	var req types.PublishRequest
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return req, requestError{http.StatusUnsupportedMediaType, "content_type", "Content-Type must be application/json"}
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, requestError{http.StatusRequestEntityTooLarge, "too_large", "request body too large"}
		}
		return req, requestError{http.StatusBadRequest, "invalid_json", "invalid JSON body"}
	}
	if strings.TrimSpace(req.Topic) == "" {
		return req, requestError{http.StatusBadRequest, "missing_topic", "topic is required"}
	}
	return req, nil
}

func publishHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lvl := requestLogLevel(r)
		req, err := decodePublish(w, r)
		if err != nil {
			re, ok := isRequestError(err)
			if !ok {
				re = requestError{http.StatusInternalServerError, "internal", err.Error()}
			}
			incrementRejected(re.reason)
			writeJSONError(w, re.StatusCode(), re.Error())
			if z := requestEvent(r, lvl, LevelError); z != nil {
				z.Int("status", re.StatusCode()).Str("reason", re.reason).Msg("publish rejected")
			}
			return
		}

		topic := bus.Topic(req.Topic)
		payload := bus.Payload(req.Payload)
		start := time.Now()
		n, open := svc.TryPublish(topic, payload)
		if !open {
			incrementRejected("closed")
			writeJSONError(w, http.StatusServiceUnavailable, "notifier is closed")
			if z := requestEvent(r, lvl, LevelError); z != nil {
				z.Int("status", http.StatusServiceUnavailable).Str("reason", "closed").Msg("publish rejected")
			}
			return
		}

		if z := requestEvent(r, lvl, LevelInfo); z != nil {
			z = z.Str("topic", req.Topic).Int("listeners", n).Dur("dur", time.Since(start))
			if lvl >= LevelDebug {
				z = z.Dict("payload", payloadDict(payload))
			}
			z.Msg("publish")
		}
		writeJSON(w, http.StatusAccepted, types.PublishResponse{Topic: req.Topic, Listeners: n})
	}
}
