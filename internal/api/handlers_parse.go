package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/hechen2/fapiaosum/internal/invoice"
	"github.com/hechen2/fapiaosum/internal/ledger"
	"github.com/hechen2/fapiaosum/internal/pagetext"
	"github.com/hechen2/fapiaosum/internal/report"
)

// handleParse ingests one batch of invoice uploads: every file is parsed into
// records, deduplicated against the batch, and accumulated into a fresh
// session. Documents are processed strictly in upload order; a failing
// document becomes a warning and never aborts the rest of the batch.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	sess := ledger.NewSession()
	log := s.log.With("session_id", sess.ID)

	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)

		doc, err := s.parseUpload(fh, filename)
		if err != nil {
			log.Warn("document skipped", "file", filename, "error", err)
			sess.Warn(fmt.Sprintf("%s: %s", filename, err))
			continue
		}

		if err := sess.Add(doc); err != nil {
			log.Warn("document rejected", "file", filename, "error", err)
			sess.Warn(err.Error())
			continue
		}
		log.Info("document accepted", "file", filename, "records", len(doc.Records))
	}

	if err := sess.Finish(); err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.sessions.Put(sess)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"session_id": sess.ID,
		"files":      sess.Files,
		"records":    len(sess.Records),
		"total":      report.Total(sess.Records, report.AmountGross),
		"warnings":   sess.Warnings,
	})
}

// parseUpload turns one uploaded file into a document record set.
func (s *Server) parseUpload(fh *multipart.FileHeader, filename string) (ledger.Document, error) {
	if !pagetext.IsSupportedExtension(filename) {
		return ledger.Document{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}

	f, err := fh.Open()
	if err != nil {
		return ledger.Document{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	provider, err := pagetext.ForFile(filename)
	if err != nil {
		return ledger.Document{}, err
	}

	if fh.Size > s.cfg.MaxUploadBytes {
		return ledger.Document{}, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}

	pages, err := provider.Pages(io.LimitReader(f, s.cfg.MaxUploadBytes), filename)
	if err != nil {
		return ledger.Document{}, fmt.Errorf("extract pages: %w", err)
	}

	return ledger.Document{
		File:    filename,
		Records: invoice.BuildRecords(filename, pages),
	}, nil
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	s.sessions.Delete(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
