// Package uploads stores logo images under a flat directory served at
// /uploads/. Files are capped at 2 MiB and renamed with a timestamp-random
// prefix so names never collide.
package uploads

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dotback/internal/transport/httpjson"
	dErrors "dotback/pkg/domain-errors"
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9.\-_]`)

var storedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "dotback_uploads_stored_total",
	Help: "Total number of logo files stored",
})

// Handler accepts multipart logo uploads.
type Handler struct {
	dir      string
	maxBytes int64
	logger   *slog.Logger
}

// NewHandler creates an upload handler writing into dir.
func NewHandler(dir string, maxBytes int64, logger *slog.Logger) *Handler {
	return &Handler{dir: dir, maxBytes: maxBytes, logger: logger}
}

// Response carries the public URL of the stored file.
type Response struct {
	URL string `json:"url"`
}

// HandleUpload implements POST /api/upload behind the admin guard. The file
// arrives in the multipart field "file".
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Cap the whole request body; a too-large file surfaces as a parse error.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeValidation, "File is required."))
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeValidation, "File size must be under 2MB."))
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.ErrorContext(ctx, "could not create uploads dir", "error", err)
		httpjson.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, ""))
		return
	}

	fileName := storedName(header.Filename)
	path := filepath.Join(h.dir, fileName)

	dst, err := os.Create(path)
	if err != nil {
		h.logger.ErrorContext(ctx, "could not create upload file", "error", err)
		httpjson.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, ""))
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, h.maxBytes)); err != nil {
		_ = os.Remove(path)
		h.logger.ErrorContext(ctx, "could not write upload file", "error", err)
		httpjson.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, ""))
		return
	}

	storedTotal.Inc()
	h.logger.InfoContext(ctx, "stored logo upload", "file", fileName, "bytes", header.Size)
	httpjson.WriteJSON(w, http.StatusOK, Response{URL: "/uploads/" + fileName})
}

// storedName sanitizes the client filename and prefixes it so repeated
// uploads of the same file never collide.
func storedName(original string) string {
	base := filepath.Base(original)
	sanitized := unsafeChars.ReplaceAllString(strings.ToLower(base), "_")
	if sanitized == "" || sanitized == "." {
		sanitized = "upload"
	}
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), sanitized)
}

// FileServer serves the uploads directory at /uploads/.
func FileServer(dir string) http.Handler {
	return http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))
}
