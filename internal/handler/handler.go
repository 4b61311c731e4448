package handler

import (
	"encoding/gob"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"warehouse-console/internal/console"
	"warehouse-console/internal/service"
	"warehouse-console/internal/session"
)

const sessionIDKey = "id"

func init() {
	gob.Register(console.Message{})
}

// Handler serves the console page and the JSON API. Each browser session is
// identified by a random id kept in a signed cookie; its warehouse connection
// lives in the registry.
type Handler struct {
	registry    *session.Registry
	store       sessions.Store
	sessionName string
	logger      *slog.Logger
}

func New(registry *session.Registry, store sessions.Store, sessionName string, logger *slog.Logger) *Handler {
	return &Handler{
		registry:    registry,
		store:       store,
		sessionName: sessionName,
		logger:      logger,
	}
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// session loads the cookie session, assigning a new id on first use. A cookie
// that fails to decode (e.g. after a secret change) is replaced.
func (h *Handler) session(c *gin.Context) (*sessions.Session, string) {
	sess, err := h.store.Get(c.Request, h.sessionName)
	if err != nil {
		h.logger.Debug("discarding unreadable session cookie", "error", err)
	}

	id, ok := sess.Values[sessionIDKey].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		sess.Values[sessionIDKey] = id
		h.save(c, sess)
	}
	return sess, id
}

func (h *Handler) save(c *gin.Context, sess *sessions.Session) {
	if err := sess.Save(c.Request, c.Writer); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}
}

func (h *Handler) sessionID(c *gin.Context) string {
	_, id := h.session(c)
	return id
}

// activeClient returns the connection of the caller's session.
func (h *Handler) activeClient(c *gin.Context) (service.DBClient, bool) {
	return h.registry.Get(h.sessionID(c))
}

func (h *Handler) flash(c *gin.Context, msgs ...console.Message) {
	if len(msgs) == 0 {
		return
	}
	sess, _ := h.session(c)
	for _, m := range msgs {
		sess.AddFlash(m)
	}
	h.save(c, sess)
}

func (h *Handler) flashes(c *gin.Context) []console.Message {
	sess, _ := h.session(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	h.save(c, sess)

	msgs := make([]console.Message, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(console.Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// statusFor maps client errors to HTTP status codes. Input problems are the
// caller's fault; everything else was rejected by the service.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier),
		errors.Is(err, service.ErrEmptyFragment),
		errors.Is(err, service.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotConnected):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
