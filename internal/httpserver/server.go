// internal/httpserver/server.go
//
// HTTP host for single-player games.
// Responsibilities:
//   - Router + middleware (JSON, CORS, request IDs, panic recovery, timeouts,
//     access log, per-client rate limiting).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id},
//     POST /game/{id}/reset.
//
// Notes:
//   - Every call into a game.Session goes through store.Update/View, which
//     serializes access per session.
//   - Rejected guesses come back as 400/409 with a stable error code and
//     leave the game untouched.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/sstandre/tuidle/internal/game"
	"github.com/sstandre/tuidle/internal/store"
	"github.com/sstandre/tuidle/internal/words"
)

// Options tunes game dimensions and request limits.
type Options struct {
	WordLength       int
	MaxAttempts      int
	Picker           words.Picker // defaults to words.RandomPicker
	AllowFixedAnswer bool         // honour "answer" in POST /game/new
	RateLimitRPS     float64      // <= 0 disables rate limiting
	RateLimitBurst   int
	CORSOrigins      []string // allowed browser origins; "*" for any
}

// Server bundles router, session store, and dictionary.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  *words.Dictionary
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, opts Options) *Server {
	if opts.Picker == nil {
		opts.Picker = words.RandomPicker{}
	}
	if opts.WordLength == 0 {
		opts.WordLength = game.DefaultWordLength
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = game.DefaultMaxAttempts
	}
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	if len(opts.CORSOrigins) > 0 {
		s.r.Use(cors(opts.CORSOrigins)) // ahead of the limiter
	}
	if opts.RateLimitRPS > 0 {
		s.r.Use(newLimiter(opts.RateLimitRPS, opts.RateLimitBurst).middleware)
	}

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"tuidle","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","POST /game/{id}/reset"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.dict.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Post("/game/{id}/reset", s.handleReset)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors answers preflights and sets Access-Control-Allow-Origin for the
// listed origins. Other origins get no CORS headers, so browsers block them.
func cors(origins []string) func(http.Handler) http.Handler {
	anyOrigin := lo.Contains(origins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")
			if origin == "" || !(anyOrigin || lo.Contains(origins, origin)) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug-level line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// writeError writes a {"error": code} body with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ GAME ---------------------------------------

// gameView is the JSON shape of a session.
type gameView struct {
	GameID         string               `json:"gameId"`
	WordLength     int                  `json:"wordLength"`
	MaxAttempts    int                  `json:"maxAttempts"`
	State          game.State           `json:"state"`
	Attempts       []game.Attempt       `json:"attempts"`
	Keyboard       map[string]game.Hint `json:"keyboard"`
	WinningAttempt int                  `json:"winningAttempt,omitempty"`
	Answer         words.Word           `json:"answer,omitempty"`
}

func viewOf(id string, sess *game.Session) gameView {
	v := gameView{
		GameID:      id,
		WordLength:  sess.WordLength(),
		MaxAttempts: sess.MaxAttempts(),
		State:       sess.State(),
		Attempts:    sess.Attempts(),
		Keyboard:    keyboardJSON(sess.Keyboard()),
	}
	if n, ok := sess.WinningAttempt(); ok {
		v.WinningAttempt = n
	}
	if ans, ok := sess.Answer(); ok {
		v.Answer = ans
	}
	return v
}

// keyboardJSON turns letter keys into one-letter strings for JSON objects.
func keyboardJSON(kb map[words.Letter]game.Hint) map[string]game.Hint {
	return lo.MapKeys(kb, func(_ game.Hint, l words.Letter) string { return l.String() })
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
}

// handleNewGame creates a session and stores it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	picker := s.opts.Picker
	if req.Answer != "" {
		if !s.opts.AllowFixedAnswer {
			writeError(w, http.StatusBadRequest, "fixed_answer_disabled")
			return
		}
		ans := words.Normalize(req.Answer)
		if !ans.Valid(s.opts.WordLength) || !s.dict.Contains(ans) {
			writeError(w, http.StatusBadRequest, "not_in_word_list")
			return
		}
		picker = firstThen(ans, s.opts.Picker)
	}

	sess, err := game.New(s.dict,
		game.WithWordLength(s.opts.WordLength),
		game.WithMaxAttempts(s.opts.MaxAttempts),
		game.WithPicker(picker),
	)
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}
	id, err := s.store.Create(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", id).Str("reqId", chimw.GetReqID(r.Context())).Msg("game created")

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: id, WordLength: sess.WordLength(), MaxAttempts: sess.MaxAttempts()})
}

// firstThen picks w once, then defers to next (so a reset gets a fresh word).
func firstThen(w words.Word, next words.Picker) words.Picker {
	used := false
	return words.PickerFunc(func(c []words.Word) (words.Word, error) {
		if used {
			return next.Pick(c)
		}
		used = true
		return w, nil
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Hints          game.GuessResult     `json:"hints"`
	State          game.State           `json:"state"`
	Attempt        int                  `json:"attempt"`
	Keyboard       map[string]game.Hint `json:"keyboard"`
	WinningAttempt int                  `json:"winningAttempt,omitempty"`
	Answer         words.Word           `json:"answer,omitempty"`
}

// handleGuess applies a guess to a stored session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(sess *game.Session) error {
		out, err := sess.SubmitGuess(words.Normalize(req.Guess))
		if err != nil {
			return err
		}
		res = guessRes{
			Hints:    out.Hints,
			State:    out.State,
			Attempt:  out.Attempt,
			Keyboard: keyboardJSON(sess.Keyboard()),
		}
		if n, ok := sess.WinningAttempt(); ok {
			res.WinningAttempt = n
		}
		if ans, ok := sess.Answer(); ok {
			res.Answer = ans
		}
		return nil
	})
	if err != nil {
		s.writeGameError(w, r, req.GameID, err)
		return
	}
	if res.State.Over() {
		log.Info().Str("gameId", req.GameID).Str("state", res.State.String()).Int("attempts", res.Attempt).Msg("game finished")
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleGetGame returns the current view of a session.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var v gameView
	err := s.store.View(r.Context(), id, func(sess *game.Session) error {
		v = viewOf(id, sess)
		return nil
	})
	if err != nil {
		s.writeGameError(w, r, id, err)
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// handleReset starts a new game in an existing session.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var v gameView
	err := s.store.Update(r.Context(), id, func(sess *game.Session) error {
		if err := sess.Reset(s.dict); err != nil {
			return err
		}
		v = viewOf(id, sess)
		return nil
	})
	if err != nil {
		s.writeGameError(w, r, id, err)
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// writeGameError maps store and session errors onto HTTP statuses.
func (s *Server) writeGameError(w http.ResponseWriter, r *http.Request, id string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrGameAlreadyOver):
		writeError(w, http.StatusConflict, "game_over")
	case errors.Is(err, game.ErrWrongLength):
		writeError(w, http.StatusBadRequest, "wrong_length")
	case errors.Is(err, game.ErrNotInWordList):
		writeError(w, http.StatusBadRequest, "not_in_word_list")
	default:
		log.Error().Err(err).Str("gameId", id).Str("reqId", chimw.GetReqID(r.Context())).Msg("game request failed")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}
