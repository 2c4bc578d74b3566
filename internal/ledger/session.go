package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hechen2/fapiaosum/internal/invoice"
)

var (
	// ErrNoRecords marks a document in which no detail line was recognized.
	ErrNoRecords = errors.New("no detail lines recognized")
	// ErrDuplicate marks a document whose identity was already accepted in
	// this batch.
	ErrDuplicate = errors.New("duplicate invoice")
	// ErrEmptyBatch means every document of a batch was skipped and the
	// session holds nothing.
	ErrEmptyBatch = errors.New("no document in the batch produced records")
)

// Document is one parsed upload: the file name plus its full record set.
type Document struct {
	File    string
	Records []invoice.LineRecord
}

// Session owns the record set accumulated from one parse batch together with
// the identity set that suppresses double-counting of the same physical
// invoice. A session is created per batch, mutated only through Add while the
// batch runs, and read-only afterwards. Documents are added strictly in
// upload order; the first occurrence of an identity wins.
type Session struct {
	ID        string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Records  []invoice.LineRecord `json:"records"`
	Files    int                  `json:"files"`
	Warnings []string             `json:"warnings"`

	seen map[string]struct{}
}

// NewSession creates an empty session for one parse batch.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Warnings:  []string{},
		seen:      make(map[string]struct{}),
	}
}

// Add accumulates one document. Empty record sets and duplicate identities
// are rejected with ErrNoRecords / ErrDuplicate; both are per-document
// conditions the caller reports as warnings without aborting the batch.
func (s *Session) Add(doc Document) error {
	if len(doc.Records) == 0 {
		return fmt.Errorf("%s: %w", doc.File, ErrNoRecords)
	}
	key := IdentityKey(doc.File, doc.Records)
	if _, dup := s.seen[key]; dup {
		return fmt.Errorf("%s: %w", doc.File, ErrDuplicate)
	}
	s.seen[key] = struct{}{}
	s.Records = append(s.Records, doc.Records...)
	s.Files++
	s.UpdatedAt = time.Now()
	return nil
}

// Warn records a per-document warning for later display.
func (s *Session) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
	s.UpdatedAt = time.Now()
}

// Finish validates the batch outcome: a session that accepted nothing is a
// batch-level failure and must not be kept.
func (s *Session) Finish() error {
	if s.Files == 0 {
		return ErrEmptyBatch
	}
	return nil
}
