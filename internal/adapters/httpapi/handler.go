package httpapi

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/twmj/internal/application"
	"github.com/bnema/twmj/internal/domain"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	defaultMaxBodyBytes  = 16 << 20
	maxJSONBodyBytes     = 1 << 20
	multipartMemoryBytes = 8 << 20
	imageFormField       = "image"
)

type Deps struct {
	Templates *application.TemplateService
	Classify  *application.ClassifyService
	Scans     *application.ScanService
	Scoring   *application.ScoringService
	Logger    *zap.Logger
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// MaxBodyBytes bounds uploaded images and scan frames.
	MaxBodyBytes int64
}

// Handler routes the public API. Wait blocks until every scan connection it
// accepted has ended.
type Handler struct {
	templates    *application.TemplateService
	classify     *application.ClassifyService
	scans        *application.ScanService
	scoring      *application.ScoringService
	logger       *zap.Logger
	maxBodyBytes int64
	upgrader     websocket.Upgrader
	sessions     sync.WaitGroup
	mux          *http.ServeMux
}

func NewHandler(deps Deps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	h := &Handler{
		templates:    deps.Templates,
		classify:     deps.Classify,
		scans:        deps.Scans,
		scoring:      deps.Scoring,
		logger:       logger,
		maxBodyBytes: maxBody,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin:      func(*http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /{$}", h.handleRoot)
	h.mux.HandleFunc("POST /classify-hand", h.handleClassifyHand)
	h.mux.HandleFunc("POST /get-points", h.handleGetPoints)
	h.mux.HandleFunc("POST /templates/export", h.handleExportTemplate)
	h.mux.HandleFunc("GET /templates/import/{uuid}", h.handleImportTemplate)
	h.mux.HandleFunc("GET /start-scan/{client_id}", h.handleStartScan)
	if deps.Metrics != nil {
		h.mux.Handle("GET /metrics", deps.Metrics)
	}

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)

	h.logger.Debug("http request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("elapsed", time.Since(started)),
	)
}

func (h *Handler) Wait() {
	h.sessions.Wait()
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, "hello world")
}

func (h *Handler) handleClassifyHand(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.readImage(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.classify.ClassifyOnce(r.Context(), application.ClassifyCommand{Filename: filename, Data: data})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, classifyResponse{
		Filename:        result.Filename,
		Size:            result.Size,
		ClassifiedDecks: toDecksDTO(result.Decks),
	})
}

func (h *Handler) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	var tiles domain.WinnerTiles
	if err := decodeJSONBody(w, r, &tiles); err != nil {
		h.writeError(w, r, err)
		return
	}

	score, err := h.scoring.GetPoints(r.Context(), tiles)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logs := score.Logs
	if logs == nil {
		logs = []string{}
	}
	writeJSON(w, http.StatusOK, pointsResponse{
		Count:                score.Count,
		Logs:                 logs,
		WinningDeckOrganized: score.WinningDeckOrganized,
	})
}

func (h *Handler) handleExportTemplate(w http.ResponseWriter, r *http.Request) {
	var request templateExportRequest
	if err := decodeJSONBody(w, r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.templates.Export(r.Context(), request.command())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(record))
}

func (h *Handler) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	record, err := h.templates.Import(r.Context(), domain.TemplateKey(r.PathValue("uuid")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(record))
}

// readImage accepts a multipart form with an "image" file field or the raw
// image as the request body.
func (h *Handler) readImage(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
			return "", nil, bodyError(err)
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		file, header, err := r.FormFile(imageFormField)
		if err != nil {
			return "", nil, fmt.Errorf("%w: multipart field %q is required", errBadRequest, imageFormField)
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, bodyError(err)
		}
		return header.Filename, data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, bodyError(err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: request body is empty", errBadRequest)
	}

	return r.URL.Query().Get("filename"), data, nil
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, out any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", errTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusRecorder remembers the response status for request logging. It keeps
// Hijack working for websocket upgrades.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
