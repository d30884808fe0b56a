package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rummi-tournament/internal/metrics"
	"rummi-tournament/internal/tournament"
)

// DefaultTTL is how long a day's document lives after its last save.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "tournament:"

// ErrMissing is returned by a Backend when the key holds no live value.
var ErrMissing = errors.New("key not found")

// Backend is the raw key-value transport behind a Store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Name() string
}

// Store persists one tournament document per calendar day. Writes replace the whole
// document; concurrent load/save cycles are last-writer-wins.
type Store struct {
	backend Backend
	ttl     time.Duration
	now     func() time.Time
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock sets the time source used to pick the day key.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		ttl:     DefaultTTL,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Today returns the date string of the current day document.
func (s *Store) Today() string {
	return tournament.DateOf(s.now())
}

// Key returns the backend key for a document date.
func Key(date string) string {
	return keyPrefix + date
}

func (s *Store) BackendName() string {
	return s.backend.Name()
}

// Load returns today's document, or an empty one if nothing is stored yet.
func (s *Store) Load(ctx context.Context) (tournament.Document, error) {
	return s.load(ctx, s.Today())
}

func (s *Store) load(ctx context.Context, date string) (tournament.Document, error) {
	start := time.Now()
	raw, err := s.backend.Get(ctx, Key(date))
	s.observe("load", start)
	if errors.Is(err, ErrMissing) {
		return tournament.NewDocument(date), nil
	}
	if err != nil {
		return tournament.Document{}, &tournament.StorageError{Op: "load", Err: err}
	}
	var doc tournament.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return tournament.Document{}, &tournament.StorageError{Op: "load", Err: fmt.Errorf("decode document: %w", err)}
	}
	doc.Normalize()
	return doc, nil
}

// Save replaces today's document.
func (s *Store) Save(ctx context.Context, doc tournament.Document) error {
	return s.save(ctx, s.Today(), doc)
}

func (s *Store) save(ctx context.Context, date string, doc tournament.Document) error {
	doc.Normalize()
	raw, err := json.Marshal(doc)
	if err != nil {
		return &tournament.StorageError{Op: "save", Err: fmt.Errorf("encode document: %w", err)}
	}
	start := time.Now()
	err = s.backend.Set(ctx, Key(date), raw, s.ttl)
	s.observe("save", start)
	if err != nil {
		return &tournament.StorageError{Op: "save", Err: err}
	}
	return nil
}

// Reset overwrites today's document with an empty one and returns it.
func (s *Store) Reset(ctx context.Context) (tournament.Document, error) {
	doc := tournament.ResetAll(s.Today())
	if err := s.Save(ctx, doc); err != nil {
		return tournament.Document{}, err
	}
	s.logger.InfoContext(ctx, "tournament reset", "date", doc.Date, "backend", s.backend.Name())
	return doc, nil
}

// Update loads today's document, applies fn and saves the result under the key it
// was loaded from, even if the day turns over meanwhile. fn errors abort without
// saving. There is no locking: a concurrent Update may overwrite this one.
func (s *Store) Update(ctx context.Context, fn func(doc *tournament.Document) error) (tournament.Document, error) {
	date := s.Today()
	doc, err := s.load(ctx, date)
	if err != nil {
		return tournament.Document{}, err
	}
	if err := fn(&doc); err != nil {
		return tournament.Document{}, err
	}
	if err := s.save(ctx, date, doc); err != nil {
		return tournament.Document{}, err
	}
	return doc, nil
}

func (s *Store) observe(method string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveStore(s.backend.Name(), method, time.Since(start))
}
