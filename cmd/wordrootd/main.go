// Command wordrootd exposes the wordroot analyzers as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/tokenize?text=<text>[&lang=en][&engine=freeling]
//	POST /api/normalize        body: {"text":"...","lang":"en"}
//	POST /api/tag              body: {"text":"...","lang":"en"}
//	GET  /api/romanize?text=<text>
//	GET  /api/frequency?word=<word>[&lang=en][&default=0]
//	GET  /api/languages
//	GET  /healthz
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/rs/cors"

	"codeberg.org/snonux/wordroot/freeling"
	"codeberg.org/snonux/wordroot/internal/langs"
	"codeberg.org/snonux/wordroot/japanese"
)

// ---- JSON types -----------------------------------------------------------

type textRequest struct {
	Text   string `json:"text"`
	Lang   string `json:"lang"`
	Engine string `json:"engine"`
}

type tokenizeResponse struct {
	Lang   string   `json:"lang"`
	Tokens []string `json:"tokens"`
}

type normalizeResponse struct {
	Lang       string   `json:"lang"`
	Normalized string   `json:"normalized"`
	Pieces     []string `json:"pieces"`
}

type tripleJSON struct {
	Stem  string `json:"stem"`
	Tag   string `json:"tag"`
	Token string `json:"token"`
}

type tagResponse struct {
	Lang    string       `json:"lang"`
	Triples []tripleJSON `json:"triples"`
}

type romanizeResponse struct {
	Kana   string `json:"kana"`
	Romaji string `json:"romaji"`
}

type frequencyResponse struct {
	Word string `json:"word"`
	Freq int64  `json:"freq"`
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
	FreeLing  []string          `json:"freeling"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ----------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- server -----------------------------------------------------------------

// server caches one backend per language and engine, so dictionaries
// load once and analyzer subprocesses stay alive between requests.
type server struct {
	newBackend func(lang, engine string) (langs.Backend, error)

	mu       sync.Mutex
	backends map[string]langs.Backend
}

func newServer(cfg langs.Config) *server {
	return &server{
		newBackend: func(lang, engine string) (langs.Backend, error) {
			return langs.New(lang, engine, cfg)
		},
		backends: make(map[string]langs.Backend),
	}
}

func (s *server) backend(lang, engine string) (langs.Backend, error) {
	if lang == "" {
		lang = "en"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := lang + "/" + engine
	if b, ok := s.backends[key]; ok {
		return b, nil
	}
	b, err := s.newBackend(lang, engine)
	if err != nil {
		return nil, err
	}
	s.backends[key] = b
	return b, nil
}

// kanaBackend is the extra operation the Japanese backend carries
// beyond the shared interface.
type kanaBackend interface {
	ToKana(text string) (string, error)
}

// japaneseTagger returns the Japanese backend with its kana operations.
func (s *server) japaneseTagger() (kanaBackend, error) {
	b, err := s.backend("ja", "")
	if err != nil {
		return nil, err
	}
	tagger, ok := b.(kanaBackend)
	if !ok {
		return nil, errors.New("the japanese backend cannot produce kana")
	}
	return tagger, nil
}

func (s *server) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, b := range s.backends {
		if err := b.Close(); err != nil {
			log.Printf("close %s: %v", key, err)
		}
	}
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	query := r.URL.Query()
	text := query.Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}
	lang := query.Get("lang")
	if lang == "" {
		lang = "en"
	}
	backend, err := s.backend(lang, query.Get("engine"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tokens, err := backend.TokenizeList(text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tokenizeResponse{Lang: lang, Tokens: tokens})
}

func (s *server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeTextRequest(w, r)
	if !ok {
		return
	}
	backend, err := s.backend(body.Lang, body.Engine)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pieces, err := backend.NormalizeList(body.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, normalizeResponse{
		Lang:       body.Lang,
		Normalized: backend.JoinNormalized(pieces),
		Pieces:     pieces,
	})
}

func (s *server) handleTag(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeTextRequest(w, r)
	if !ok {
		return
	}
	backend, err := s.backend(body.Lang, body.Engine)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	triples, err := backend.TagAndStem(body.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]tripleJSON, 0, len(triples))
	for _, triple := range triples {
		out = append(out, tripleJSON{Stem: triple.Stem, Tag: triple.Tag, Token: triple.Token})
	}
	writeJSON(w, http.StatusOK, tagResponse{Lang: body.Lang, Triples: out})
}

// decodeTextRequest reads the POST body shared by normalize and tag,
// defaulting the language to English.
func decodeTextRequest(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return textRequest{}, false
	}
	var body textRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return textRequest{}, false
	}
	if body.Lang == "" {
		body.Lang = "en"
	}
	return body, true
}

func (s *server) handleRomanize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}
	// Failing to build the analyzer means this deployment cannot serve
	// Japanese at all, the same class of error as an unknown language.
	tagger, err := s.japaneseTagger()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	kana, err := tagger.ToKana(text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, romanizeResponse{
		Kana:   kana,
		Romaji: japanese.RomanizeKana(kana),
	})
}

func (s *server) handleFrequency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	query := r.URL.Query()
	word := query.Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	lang := query.Get("lang")
	if lang == "" {
		lang = "en"
	}
	var defaultFreq int64
	if raw := query.Get("default"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "'default' must be an integer")
			return
		}
		defaultFreq = parsed
	}
	freq, err := langs.LookupFrequency(lang, word, defaultFreq)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, frequencyResponse{Word: word, Freq: freq})
}

func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, languagesResponse{
		Languages: langs.Known(),
		FreeLing:  freeling.Languages,
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tokenize", s.handleTokenize)
	mux.HandleFunc("/api/normalize", s.handleNormalize)
	mux.HandleFunc("/api/tag", s.handleTag)
	mux.HandleFunc("/api/romanize", s.handleRomanize)
	mux.HandleFunc("/api/frequency", s.handleFrequency)
	mux.HandleFunc("/api/languages", s.handleLanguages)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	mecab := flag.Bool("mecab", false, "analyze Japanese with the mecab command instead of the bundled dictionary")
	freelingConfig := flag.String("freeling-config", "", "directory holding FreeLing .cfg files")
	flag.Parse()

	srv := newServer(langs.Config{
		MeCab:          *mecab,
		FreeLingConfig: *freelingConfig,
	})

	httpServer := &http.Server{
		Addr:    *addr,
		Handler: cors.Default().Handler(srv.routes()),
	}

	done := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
		srv.close()
		close(done)
	}()

	log.Printf("listening on %s", *addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	<-done
}
