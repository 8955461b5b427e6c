package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/o0olele/villawalk/config"
	"github.com/o0olele/villawalk/player"
	"github.com/o0olele/villawalk/scene"
)

const shutdownTimeout = 5 * time.Second

// Options configure the HTTP front of a scene.
type Options struct {
	Addr           string
	TickRate       int
	AllowedOrigins []string
	Logger         *log.Logger
}

// OptionsFrom takes the server section of a scene file.
func OptionsFrom(cfg config.Server) Options {
	return Options{
		Addr:           cfg.Addr,
		TickRate:       cfg.TickRate,
		AllowedOrigins: cfg.AllowedOrigins,
	}
}

// Server runs a scene's frame loop and serves its state. The mutex
// serializes the loop and the handlers; the scene itself is single-threaded.
type Server struct {
	mu    sync.Mutex
	scene *scene.Scene
	input player.Input

	opts     Options
	logger   *log.Logger
	hub      *hub
	upgrader websocket.Upgrader
	router   *mux.Router
}

// TickRequest steps the scene by hand.
type TickRequest struct {
	DT    float32      `json:"dt"`
	Input player.Input `json:"input"`
}

type FloorResponse struct {
	X      float32 `json:"x"`
	Z      float32 `json:"z"`
	Hint   float32 `json:"hint"`
	Height float32 `json:"height"`
}

type ToggleResponse struct {
	Name string `json:"name"`
	On   bool   `json:"on"`
}

func New(sc *scene.Scene, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Addr == "" {
		opts.Addr = config.DefaultAddr
	}
	if opts.TickRate <= 0 {
		opts.TickRate = config.DefaultTickRate
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	logger := opts.Logger.WithPrefix("server")
	s := &Server{
		scene:  sc,
		opts:   opts,
		logger: logger,
		hub:    newHub(logger),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/agents", s.agentsHandler).Methods("GET")
	api.HandleFunc("/agents/{name}", s.agentHandler).Methods("GET")
	api.HandleFunc("/snapshot", s.snapshotHandler).Methods("GET")
	api.HandleFunc("/tick", s.tickHandler).Methods("POST")
	api.HandleFunc("/input", s.inputHandler).Methods("POST")
	api.HandleFunc("/fans/{name}/toggle", s.fanHandler).Methods("POST")
	api.HandleFunc("/lights/{name}/toggle", s.lightHandler).Methods("POST")
	api.HandleFunc("/zones", s.zonesHandler).Methods("GET")
	api.HandleFunc("/floor", s.floorHandler).Methods("GET")
	api.HandleFunc("/stream", s.streamHandler).Methods("GET")
	s.router = r
	return s
}

// Handler returns the router wrapped in CORS.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(s.router)
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.opts.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// SetInput replaces the key state the frame loop feeds the player.
func (s *Server) SetInput(in player.Input) {
	s.mu.Lock()
	s.input = in
	s.mu.Unlock()
}

// Step advances the scene by dt milliseconds and pushes the resulting
// snapshot to stream subscribers. The push happens under the scene lock so
// subscribers see frames in order; broadcast never blocks.
func (s *Server) Step(dt float32, in player.Input) (scene.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scene.Tick(dt, in)
	snap, err := s.scene.Snapshot()
	if err != nil {
		return scene.Snapshot{}, err
	}

	if s.hub.count() > 0 {
		data, err := json.Marshal(snap)
		if err != nil {
			return snap, fmt.Errorf("marshal snapshot: %w", err)
		}
		s.hub.broadcast(data)
	}
	return snap, nil
}

func (s *Server) frame(dt float32) {
	s.mu.Lock()
	in := s.input
	s.mu.Unlock()
	if _, err := s.Step(dt, in); err != nil {
		s.logger.Error("frame failed", "err", err)
	}
}

// Run serves HTTP and drives the frame loop until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.opts.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr, "tickRate", s.opts.TickRate)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.TickRate))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down")
			s.hub.closeAll()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			err := srv.Shutdown(shutdownCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		case err := <-errCh:
			return fmt.Errorf("serve %s: %w", s.opts.Addr, err)
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds() * 1000)
			last = now
			s.frame(dt)
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) agentsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	agents := s.scene.Agents()
	s.mu.Unlock()
	writeJSON(w, agents)
}

func (s *Server) agentHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s.mu.Lock()
	st, err := s.scene.Agent(name)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, st)
}

func (s *Server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap, err := s.scene.Snapshot()
	s.mu.Unlock()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to snapshot scene: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) tickHandler(w http.ResponseWriter, r *http.Request) {
	var req TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.DT < 0 {
		http.Error(w, "dt must not be negative", http.StatusBadRequest)
		return
	}
	snap, err := s.Step(req.DT, req.Input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to step scene: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) inputHandler(w http.ResponseWriter, r *http.Request) {
	var in player.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	s.SetInput(in)
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) toggle(w http.ResponseWriter, r *http.Request, fn func(string) (bool, error)) {
	name := mux.Vars(r)["name"]
	s.mu.Lock()
	on, err := fn(name)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, ToggleResponse{Name: name, On: on})
}

func (s *Server) fanHandler(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, s.scene.ToggleFan)
}

func (s *Server) lightHandler(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, s.scene.ToggleLight)
}

func (s *Server) zonesHandler(w http.ResponseWriter, r *http.Request) {
	data, err := s.scene.Zones().GeoJSON().MarshalJSON()
	if err != nil {
		http.Error(w, "Failed to serialize zones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(data)
}

func parseCoord(r *http.Request, key string, required bool) (float32, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		if required {
			return 0, fmt.Errorf("missing %s parameter", key)
		}
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", key, err)
	}
	return float32(v), nil
}

func (s *Server) floorHandler(w http.ResponseWriter, r *http.Request) {
	x, err := parseCoord(r, "x", true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	z, err := parseCoord(r, "z", true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	hint, err := parseCoord(r, "hint", false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, FloorResponse{X: x, Z: z, Hint: hint, Height: s.scene.Floor(x, z, hint)})
}
