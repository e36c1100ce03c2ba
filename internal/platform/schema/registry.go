// Package schema exposes a catalog of the record shapes the API accepts, so
// frontend tooling can introspect collections without a database round trip.
package schema

import (
	"net/http"
	"sort"
	"sync"

	"github.com/labstack/echo/v4"
)

// Field describes one attribute of a record model.
type Field struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Model describes a record model and the collection it is stored in.
// Catalog-only models have no collection endpoint yet and leave Collection
// empty.
type Model struct {
	Name       string  `json:"name"`
	Collection string  `json:"collection,omitempty"`
	Fields     []Field `json:"fields"`
}

// Registry is a concurrency-safe model catalog. Domains register their
// models at startup; the /schema endpoint reads it afterwards.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

func (r *Registry) Register(models ...Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range models {
		r.models[m.Name] = m
	}
}

// Models returns the registered models sorted by name.
func (r *Registry) Models() []Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Handler serves the model catalog.
func (r *Registry) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"models": r.Models()})
	}
}
