// Package session keeps one warehouse connection per browser session.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"warehouse-console/internal/model"
	"warehouse-console/internal/service"
)

// Factory returns an unconnected client.
type Factory func() service.DBClient

type entry struct {
	creds  model.Credentials
	client service.DBClient
}

// Registry maps session ids to their connected clients.
type Registry struct {
	mu        sync.Mutex
	newClient Factory
	entries   map[string]*entry
	logger    *slog.Logger
}

func NewRegistry(newClient Factory, logger *slog.Logger) *Registry {
	return &Registry{
		newClient: newClient,
		entries:   make(map[string]*entry),
		logger:    logger,
	}
}

// Connect returns the session's client, opening one if the session has none
// or holds one opened with different credentials. A failed attempt leaves the
// session without a client. The login runs without holding the registry lock,
// so other sessions are served while it is in flight.
func (r *Registry) Connect(ctx context.Context, id string, creds model.Credentials) (service.DBClient, error) {
	r.mu.Lock()
	if e, ok := r.entries[id]; ok && e.creds == creds {
		r.mu.Unlock()
		return e.client, nil
	}
	r.mu.Unlock()

	client := r.newClient()
	if err := client.Connect(ctx, creds); err != nil {
		r.logger.Warn("connection attempt failed", "session", id, "account", creds.Account, "user", creds.User, "error", err)

		r.mu.Lock()
		defer r.mu.Unlock()
		if e, ok := r.entries[id]; ok && e.creds != creds {
			r.closeEntry(id, e)
		}
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		if e.creds == creds {
			// A concurrent request of the same session got there first.
			if err := client.Disconnect(); err != nil {
				r.logger.Warn("disconnect failed", "session", id, "error", err)
			}
			return e.client, nil
		}
		r.closeEntry(id, e)
	}

	r.entries[id] = &entry{creds: creds, client: client}
	r.logger.Info("connected", "session", id, "account", creds.Account, "user", creds.User)
	return client, nil
}

// Get returns the session's client, if any.
func (r *Registry) Get(id string) (service.DBClient, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.client, true
}

// Account reports the account the session is logged into.
func (r *Registry) Account(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		return e.creds.Account
	}
	return ""
}

// Disconnect closes the session's client, if any.
func (r *Registry) Disconnect(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	return r.closeEntry(id, e)
}

// CloseAll disconnects every session. Used on shutdown.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for id, e := range r.entries {
		if err := r.closeEntry(id, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len reports how many sessions currently hold a connection.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// closeEntry must be called with mu held.
func (r *Registry) closeEntry(id string, e *entry) error {
	delete(r.entries, id)
	err := e.client.Disconnect()
	if err != nil {
		r.logger.Warn("disconnect failed", "session", id, "error", err)
	} else {
		r.logger.Debug("disconnected", "session", id)
	}
	return err
}
