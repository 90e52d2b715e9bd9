package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/play"
	"github.com/AbheetChaudhary/PolyGone/pkg/render/nodelink"
)

const (
	shutdownTimeout = 5 * time.Second
	maxRequestBody  = 1 << 16
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one game over HTTP",
		Long: `Serve one game over HTTP.

Endpoints:
  GET  /api/state    current game as JSON
  POST /api/toggle   toggle an edge, body {"a":"1","b":"2"}
  POST /api/remove   remove the closed polygon
  POST /api/reset    clear the selection
  GET  /graph.svg    current graph with the selection highlighted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Addr
			}
			return c.runServe(cmd.Context(), cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+defaultAddr+")")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cmd *cobra.Command, addr string) error {
	logger := loggerFromContext(ctx)

	ctrl, err := c.newGame(play.LogListener{Logger: logger}, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           newGameServer(ctrl, c.Config.Colors, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	out := cmd.OutOrStdout()
	url := "http://" + ln.Addr().String()
	printSuccess(out, "Serving %s (game %s)", StyleHighlight.Render(ctrl.Name()), ctrl.ID())
	printFile(out, StyleLink.Render(url+"/graph.svg"))
	printNextStep(out, "Toggle an edge", fmt.Sprintf(`curl -X POST -d '{"a":"1","b":"2"}' %s/api/toggle`, url))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// =============================================================================
// gameServer - HTTP boundary
// =============================================================================

// gameServer exposes a controller over HTTP. Requests are applied one at a
// time, in the order they take the lock.
type gameServer struct {
	mu     sync.Mutex
	ctrl   *play.Controller
	colors ColorsConfig
	logger *log.Logger
}

func newGameServer(ctrl *play.Controller, colors ColorsConfig, logger *log.Logger) *gameServer {
	return &gameServer{ctrl: ctrl, colors: colors, logger: logger}
}

func (s *gameServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/toggle", s.handleToggle)
		r.Post("/remove", s.handleRemove)
		r.Post("/reset", s.handleReset)
	})
	r.Get("/graph.svg", s.handleSVG)
	r.Get("/graph.dot", s.handleDOT)

	return r
}

func (s *gameServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"id", middleware.GetReqID(r.Context()),
			"took", time.Since(start).Round(time.Microsecond))
	})
}

// toggleRequest is the body of POST /api/toggle.
type toggleRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// toggleResponse reports a successful toggle.
type toggleResponse struct {
	Action       string `json:"action"`
	Edge         string `json:"edge"`
	ChainFormed  bool   `json:"chain_formed"`
	StateChanged bool   `json:"state_changed"`
}

// removeResponse reports a successful removal.
type removeResponse struct {
	Chain    []string `json:"chain"`
	Vertices []string `json:"vertices"`
	Cleared  bool     `json:"cleared"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *gameServer) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.ctrl.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *gameServer) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	e, err := play.EdgeFromIDs(req.A, req.B)
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	out, err := s.ctrl.OnEdgeClicked(e)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{
		Action:       out.Action.String(),
		Edge:         out.Edge.String(),
		ChainFormed:  out.ChainFormed,
		StateChanged: out.StateChanged,
	})
}

func (s *gameServer) handleRemove(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	removal, err := s.ctrl.OnRemoveCommand()
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	resp := removeResponse{Chain: []string{}, Vertices: []string{}, Cleared: removal.Cleared}
	for _, e := range removal.Chain {
		resp.Chain = append(resp.Chain, e.String())
	}
	for _, id := range removal.Vertices {
		resp.Vertices = append(resp.Vertices, string(id))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *gameServer) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.ctrl.OnResetCommand()
	snap := s.ctrl.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *gameServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	svg, err := nodelink.RenderSVG(r.Context(), s.dot())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render graph"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(svg)
}

func (s *gameServer) handleDOT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write([]byte(s.dot()))
}

func (s *gameServer) dot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return diagramDOT(s.ctrl, s.colors)
}

// diagramDOT draws the controller's graph with its selection highlighted.
func diagramDOT(ctrl *play.Controller, colors ColorsConfig) string {
	return nodelink.ToDOT(ctrl, nodelink.Options{
		Selected:      ctrl.SelectedSet(),
		SelectedColor: colors.Selected,
		IdleColor:     colors.Idle,
		Title:         ctrl.Name(),
	})
}

// =============================================================================
// Responses
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeUnknownEdge:
		return http.StatusNotFound
	case errors.ErrCodeNotConnected, errors.ErrCodeChainAlreadyFormed,
		errors.ErrCodeNoOpRemoval, errors.ErrCodeChainNotFormed:
		return http.StatusConflict
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidEdge, errors.ErrCodeInvalidLevel:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

