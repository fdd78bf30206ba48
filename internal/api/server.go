// Package api serves cube sessions over JSON for the browser renderer.
//
// Routes:
//   - GET  /health
//   - POST /api/sessions                    create a session {size}
//   - GET  /api/sessions/{id}               current state
//   - DELETE /api/sessions/{id}
//   - POST /api/sessions/{id}/moves         apply {moves: "R U R'"}
//   - POST /api/sessions/{id}/undo
//   - POST /api/sessions/{id}/scramble      {length, seed?}
//   - POST /api/sessions/{id}/reset         {size?}
//   - GET  /api/sessions/{id}/stats
//   - GET  /api/explain?moves=...
package api

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/analysis"
	"github.com/SeamusWaldron/twisty/internal/notation"
	"github.com/SeamusWaldron/twisty/internal/session"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

// Options configures a Server.
type Options struct {
	ClientOrigin   string       // allowed CORS origin
	DefaultSize    int          // size for a create request without one
	ScrambleLength int          // length for a scramble request without one
	MaxScramble    int          // longest scramble a request may ask for
	MaxSize        int          // largest size accepted, 0 for the engine default
	DB             *storage.DB  // optional solve statistics
	Logger         *zap.Logger
}

// DefaultMaxScramble caps scramble requests when Options leaves it unset.
const DefaultMaxScramble = 500

// Server bundles router, session registry and stats database.
type Server struct {
	r        *chi.Mux
	sessions *registry
	opts     Options
	log      *zap.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.DefaultSize == 0 {
		opts.DefaultSize = 3
	}
	if opts.ScrambleLength == 0 {
		opts.ScrambleLength = 20
	}
	if opts.MaxScramble == 0 {
		opts.MaxScramble = DefaultMaxScramble
	}
	if opts.MaxScramble < opts.ScrambleLength {
		opts.MaxScramble = opts.ScrambleLength
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{r: chi.NewRouter(), sessions: newRegistry(), opts: opts, log: log}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(s.logRequests)
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.sessions.len()})
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/explain", s.handleExplain)
		r.Post("/sessions", s.handleCreate)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/moves", s.handleMoves)
			r.Post("/undo", s.handleUndo)
			r.Post("/scramble", s.handleScramble)
			r.Post("/reset", s.handleReset)
			r.Get("/stats", s.handleStats)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found", Detail: r.URL.Path})
	})

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single browser origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}

// ------------------------------ SESSIONS -----------------------------------

func (s *Server) newSession(size int) (string, *session.Session, error) {
	opts := []session.Option{session.WithLogger(s.log)}
	if s.opts.MaxSize > 0 {
		opts = append(opts, session.WithEngineOptions(twisty.WithMaxSize(s.opts.MaxSize)))
	}
	if s.opts.DB != nil {
		opts = append(opts, session.WithStore(s.opts.DB))
	}

	sess, err := session.New(size, opts...)
	if err != nil {
		return "", nil, err
	}
	id := sess.ID()
	if id == "" {
		id = uuid.New().String()
	}
	return id, sess, nil
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if !decodeOptional(w, r, &req) {
		return
	}
	if req.Size == 0 {
		req.Size = s.opts.DefaultSize
	}

	id, sess, err := s.newSession(req.Size)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.sessions.save(id, sess)
	s.log.Info("session created", zap.String("id", id), zap.Int("size", req.Size))

	writeJSON(w, http.StatusCreated, toSession(id, sess))
}

// lookup writes a 404 and returns nil for an unknown session.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (string, *session.Session) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "session_not_found", Detail: id})
		return "", nil
	}
	return id, sess
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, toSession(id, sess))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.sessions.remove(id) {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "session_not_found", Detail: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	id, sess := s.lookup(w, r)
	if sess == nil {
		return
	}

	var req movesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json", Detail: err.Error()})
		return
	}

	steps, err := sess.ApplySequence(strings.Fields(req.Moves))
	out := make([]stepJSON, len(steps))
	for i, step := range steps {
		out[i] = toStep(step)
	}

	if err != nil {
		var ne *twisty.NotationError
		if !errors.As(err, &ne) {
			s.writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, moveErrorRes{
			Error:   errorCode(err),
			Token:   ne.Token,
			Index:   ne.Index,
			Session: toSession(id, sess),
			Steps:   out,
		})
		return
	}

	writeJSON(w, http.StatusOK, movesRes{sessionRes: toSession(id, sess), Steps: out})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	id, sess := s.lookup(w, r)
	if sess == nil {
		return
	}

	step, err := sess.Undo()
	if errors.Is(err, session.ErrNothingToUndo) {
		writeJSON(w, http.StatusConflict, errorRes{Error: "nothing_to_undo"})
		return
	}
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movesRes{sessionRes: toSession(id, sess), Steps: []stepJSON{toStep(step)}})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	id, sess := s.lookup(w, r)
	if sess == nil {
		return
	}

	var req scrambleReq
	if !decodeOptional(w, r, &req) {
		return
	}
	if req.Length == 0 {
		req.Length = s.opts.ScrambleLength
	}
	if req.Length > s.opts.MaxScramble {
		s.log.Debug("scramble too long", zap.Int("length", req.Length), zap.Int("max", s.opts.MaxScramble))
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "invalid_length"})
		return
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = twisty.NewSource(*req.Seed)
	} else {
		rng = twisty.NewSource(rand.Uint64())
	}

	seq, err := sess.ScrambleCube(req.Length, rng)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scrambleRes{sessionRes: toSession(id, sess), Scramble: seq.String()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id, sess := s.lookup(w, r)
	if sess == nil {
		return
	}

	var req resetReq
	if !decodeOptional(w, r, &req) {
		return
	}
	if err := sess.Reset(req.Size); err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSession(id, sess))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	_, sess := s.lookup(w, r)
	if sess == nil {
		return
	}

	st, err := sess.Stats()
	if err != nil {
		s.log.Error("stats", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "stats_failed"})
		return
	}
	writeJSON(w, http.StatusOK, statsJSON{
		Count:        st.Count,
		BestMs:       millis(st.Best),
		AverageMs:    millis(st.Average),
		AverageMoves: st.AverageMoves,
	})
}

// handleExplain describes a sequence. It is lenient: unknown tokens are
// listed in skipped rather than failing the request.
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	moves, skipped := notation.ParseLenient(r.URL.Query().Get("moves"))
	writeJSON(w, http.StatusOK, explainRes{
		Moves:      notation.DescribeSequence(moves),
		Personal:   notation.ToPersonalSequence(moves),
		Simplified: notation.Simplify(moves).String(),
		Inverse:    moves.Inverse().String(),
		Skipped:    skipped,
		Analysis:   analysis.Analyze(moves),
	})
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeOptional decodes a JSON body if there is one. An empty body leaves
// v at its zero value.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json", Detail: err.Error()})
		return false
	}
	return true
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, twisty.ErrUnsupportedLayer):
		return "unsupported_layer"
	case errors.Is(err, twisty.ErrInvalidNotation):
		return "invalid_notation"
	case errors.Is(err, twisty.ErrUnsupportedSize):
		return "unsupported_size"
	case errors.Is(err, twisty.ErrInvalidLength):
		return "invalid_length"
	default:
		return "internal"
	}
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	code := errorCode(err)
	if code == "internal" {
		s.log.Error("engine", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: code})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorRes{Error: code, Detail: err.Error()})
}
