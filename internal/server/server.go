// Package server exposes the canvas coordinator over a small JSON HTTP
// surface, so a browser front end (or curl) can drive node registration,
// drags, and zoom on a headless board.
//
// The canvas core is single-owner state; every handler takes the server's
// mutex so all mutations and reads are serialized onto one logical owner, as
// the core requires. The surface adds input validation at the boundary and
// maps structured error codes to HTTP statuses; the core itself stays total.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/errors"
	"github.com/corkboard/corkboard/pkg/observability"
)

// Server serializes access to one Coordinator and serves the JSON API.
type Server struct {
	mu     sync.Mutex
	coord  *canvas.Coordinator
	logger *log.Logger

	// drag bookkeeping for the observability hooks
	dragStarted  time.Time
	lastOverflow bool
}

// New creates a server around coord. logger may be nil for a default logger.
func New(coord *canvas.Coordinator, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{coord: coord, logger: logger}
}

// Router builds the chi router with all canvas routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/nodes", func(r chi.Router) {
		r.Get("/", s.handleListNodes)
		r.Post("/", s.handleRegisterNode)
		r.Get("/{id}", s.handleGetNode)
		r.Delete("/{id}", s.handleUnregisterNode)
	})

	r.Route("/drag", func(r chi.Router) {
		r.Post("/start", s.handleDragStart)
		r.Post("/update", s.handleDragUpdate)
		r.Post("/end", s.handleDragEnd)
	})

	r.Route("/viewport", func(r chi.Router) {
		r.Get("/", s.handleViewport)
		r.Put("/size", s.handleSetSize)
		r.Put("/zoom", s.handleSetZoom)
		r.Get("/visible", s.handleVisible)
	})

	return r
}

// =============================================================================
// Request / Response Bodies
// =============================================================================

type registerNodeRequest struct {
	ID string  `json:"id,omitempty"` // generated when empty
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type registerNodeResponse struct {
	Node   canvas.NodePosition   `json:"node"`
	Result canvas.OverflowResult `json:"result"`
}

type dragStartRequest struct {
	ID string `json:"id"`
}

type dragUpdateResponse struct {
	Updated bool                  `json:"updated"`
	Result  canvas.OverflowResult `json:"result"`
}

type zoomRequest struct {
	Zoom float64 `json:"zoom"`
}

type sizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListNodes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	positions := s.coord.Positions()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, positions)
}

func (s *Server) handleRegisterNode(w http.ResponseWriter, r *http.Request) {
	var req registerNodeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := errors.ValidateNodeID(req.ID); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	res := s.coord.RegisterNode(req.ID, canvas.Point{X: req.X, Y: req.Y})
	node, _ := s.coord.NodePosition(req.ID)
	count := s.coord.Len()
	s.mu.Unlock()

	observability.Canvas().OnNodeRegistered(r.Context(), req.ID, count)
	s.noteOverflow(r, res)
	s.logger.Debug("node registered", "id", req.ID, "nodes", count)

	writeJSON(w, http.StatusCreated, registerNodeResponse{Node: node, Result: res})
}

func (s *Server) handleGetNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	node, ok := s.coord.NodePosition(id)
	s.mu.Unlock()

	if !ok {
		writeError(w, errors.New(errors.ErrCodeNodeNotFound, "node %q not registered", id))
		return
	}
	writeJSON(w, http.StatusOK, node)
}

func (s *Server) handleUnregisterNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	_, ok := s.coord.NodePosition(id)
	res := s.coord.UnregisterNode(id)
	count := s.coord.Len()
	s.mu.Unlock()

	if !ok {
		writeError(w, errors.New(errors.ErrCodeNodeNotFound, "node %q not registered", id))
		return
	}

	observability.Canvas().OnNodeUnregistered(r.Context(), id, count)
	s.noteOverflow(r, res)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	var req dragStartRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateNodeID(req.ID); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	s.coord.StartDrag(req.ID)
	s.dragStarted = time.Now()
	s.mu.Unlock()

	observability.Canvas().OnDragStart(r.Context(), req.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDragUpdate(w http.ResponseWriter, r *http.Request) {
	var ev canvas.DragEvent
	if err := decodeBody(r, &ev); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	res, updated := s.coord.UpdateDrag(ev)
	s.mu.Unlock()

	// A mismatched or stale drag id is not an error: the single-flight
	// invariant discards it and tells the caller nothing moved.
	s.noteOverflow(r, res)
	writeJSON(w, http.StatusOK, dragUpdateResponse{Updated: updated, Result: res})
}

func (s *Server) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	id, active := s.coord.Dragging()
	s.coord.EndDrag()
	started := s.dragStarted
	s.mu.Unlock()

	if active {
		observability.Canvas().OnDragEnd(r.Context(), id, time.Since(started))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleViewport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	res := s.coord.Viewport().Result()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSetSize(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateCanvasSize(req.Width, req.Height); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	res := s.coord.Viewport().SetSize(canvas.Size{Width: req.Width, Height: req.Height})
	s.mu.Unlock()

	s.noteOverflow(r, res)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSetZoom(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	// Out-of-range zoom is not rejected; the viewport clamps it (the
	// response carries the applied value).
	s.mu.Lock()
	res := s.coord.Viewport().SetZoom(req.Zoom)
	s.mu.Unlock()

	observability.Canvas().OnZoom(r.Context(), req.Zoom, res.Zoom)
	s.noteOverflow(r, res)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleVisible(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	visible := s.coord.Viewport().VisibleElements()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, visible)
}

// noteOverflow reports overflow flag transitions to the canvas hooks.
func (s *Server) noteOverflow(r *http.Request, res canvas.OverflowResult) {
	s.mu.Lock()
	changed := res.Overflow != s.lastOverflow
	s.lastOverflow = res.Overflow
	s.mu.Unlock()

	if changed {
		observability.Canvas().OnOverflowChange(r.Context(), res.Overflow)
	}
}

// =============================================================================
// JSON Helpers
// =============================================================================

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidNodeID, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeNodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	writeJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}
