package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/modchart/pkg/config"
	"github.com/matzehuels/modchart/pkg/errors"
	modio "github.com/matzehuels/modchart/pkg/io"
	"github.com/matzehuels/modchart/pkg/legend"
	"github.com/matzehuels/modchart/pkg/pipeline"
	"github.com/matzehuels/modchart/pkg/render/dialects"
)

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	Graph   modio.Data    `json:"graph"`
	Config  config.Config `json:"config"`
	Dialect string        `json:"dialect,omitempty"`
	Title   string        `json:"title,omitempty"`

	NoGrouping   bool `json:"no_grouping,omitempty"`
	SplitClasses bool `json:"split_classes,omitempty"`
	InferTypes   bool `json:"infer_types,omitempty"`
}

// RenderResponse is the body returned by POST /render.
type RenderResponse struct {
	RequestID string `json:"request_id"`
	Dialect   string `json:"dialect"`
	Ext       string `json:"ext"`
	Source    string `json:"source"`
	Classes   string `json:"classes,omitempty"`
	GraphHash string `json:"graph_hash"`
	Cached    bool   `json:"cached"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) handleDialects(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name string `json:"name"`
		Ext  string `json:"ext"`
	}
	out := make([]entry, 0, len(dialects.All))
	for _, d := range dialects.All {
		out = append(out, entry{Name: string(d.Name()), Ext: d.Ext()})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	res, err := s.render(r, "")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, RenderResponse{
		RequestID: RequestID(r.Context()),
		Dialect:   string(res.Dialect),
		Ext:       res.Ext,
		Source:    res.Source,
		Classes:   res.Classes,
		GraphHash: res.GraphHash,
		Cached:    res.CacheHit,
	})
}

// handleRenderText renders with the dialect from the URL and returns the
// diagram text alone.
func (s *Server) handleRenderText(w http.ResponseWriter, r *http.Request) {
	res, err := s.render(r, chi.URLParam(r, "dialect"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, res.Source)
}

func (s *Server) render(r *http.Request, dialect string) (*pipeline.Result, error) {
	var req RenderRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	if dialect == "" {
		dialect = req.Dialect
	}

	g, err := req.Graph.Graph()
	if err != nil {
		return nil, err
	}
	return s.runner.Render(r.Context(), g, req.Config, pipeline.Options{
		Dialect:      config.Dialect(dialect),
		Title:        req.Title,
		NoGrouping:   req.NoGrouping,
		SplitClasses: req.SplitClasses,
		InferTypes:   req.InferTypes,
	})
}

func (s *Server) handleLegend(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := req.Graph.Graph()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	nodeTypes, edgeTypes := req.Config.ProjectTypes, req.Config.LinkTypes
	if req.InferTypes {
		nodeTypes, edgeTypes = config.InferTypes(g, nodeTypes, edgeTypes)
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, legend.ForGraph(g, nodeTypes, edgeTypes))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	dot, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	layout := config.LayoutEngine(r.URL.Query().Get("layout"))
	svg, cached, err := s.runner.SVG(r.Context(), string(dot), layout, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if cached {
		w.Header().Set("X-Cache", "hit")
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	return nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch {
	case code.IsInput():
		return http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= 500 {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "error", err)
	}
	s.writeJSON(w, status, ErrorResponse{
		RequestID: RequestID(r.Context()),
		Code:      string(code),
		Message:   errors.UserMessage(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
