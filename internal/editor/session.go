// Package editor implements the admin editing session over the site
// document: a working copy cloned from the persisted baseline, structural
// dirty tracking, and a single-flight save that publishes the working copy
// atomically.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"trainerhub-app/internal/domain/sitedoc"
)

// Store is the persistence surface the session publishes to. Load returns
// the current persisted document; Replace swaps it wholesale, all or
// nothing.
type Store interface {
	Load(ctx context.Context) (*sitedoc.Document, error)
	Replace(ctx context.Context, doc *sitedoc.Document) error
}

// NotifyKind classifies a notification for the hosting UI.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notifier receives user-facing outcome messages. Every failed save emits
// exactly one error notification, every successful save one success
// notification.
type Notifier func(message string, kind NotifyKind)

// State of the session as observed by the UI.
type State string

const (
	StateClean  State = "clean"
	StateDirty  State = "dirty"
	StateSaving State = "saving"
)

// ErrSaveInFlight is returned when a save is requested while another one
// has not resolved yet.
var ErrSaveInFlight = errors.New("editor: save already in progress")

// Session owns the working copy. The baseline is only ever advanced by
// Save; the working copy never aliases it.
type Session struct {
	mu       sync.Mutex
	store    Store
	notify   Notifier
	baseline *sitedoc.Document
	working  *sitedoc.Document
	dirty    bool
	saving   bool
}

// Open loads the persisted document and starts a clean session on it. A
// load failure is logged and substituted with the built-in default
// document so the admin always has something to edit.
func Open(ctx context.Context, store Store, notify Notifier) *Session {
	if notify == nil {
		notify = func(string, NotifyKind) {}
	}
	baseline, err := store.Load(ctx)
	if err != nil {
		log.Println("document load failed, starting from defaults:", err)
		baseline = sitedoc.Default()
	}
	return &Session{
		store:    store,
		notify:   notify,
		baseline: baseline,
		working:  baseline.Clone(),
	}
}

// Mutate applies update to a clone of the working copy and swaps the
// result in. The dirty flag always reflects current divergence from the
// baseline, so editing a field back to its persisted value returns the
// session to clean.
func (s *Session) Mutate(update func(*sitedoc.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.working.Clone()
	update(next)
	s.working = next
	s.dirty = !s.working.Equal(s.baseline)
}

// Save publishes the working copy as the new baseline. It snapshots the
// working copy before writing, so edits arriving while the store write is
// pending are kept and leave the session dirty afterwards. While clean it
// is a no-op; while another save is pending it returns ErrSaveInFlight.
//
// On a store failure nothing is discarded: baseline and working copy stay
// as they were and the error is surfaced through the notifier.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	snapshot := s.working.Clone()
	s.saving = true
	s.mu.Unlock()

	err := s.store.Replace(ctx, snapshot)

	s.mu.Lock()
	s.saving = false
	if err == nil {
		s.baseline = snapshot
	}
	s.dirty = !s.working.Equal(s.baseline)
	s.mu.Unlock()

	if err != nil {
		s.notify("Could not save changes: "+err.Error(), NotifyError)
		return fmt.Errorf("editor: save document: %w", err)
	}
	s.notify("Changes published", NotifySuccess)
	return nil
}

// Discard drops all unsaved edits and resets the working copy to the
// baseline.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = s.baseline.Clone()
	s.dirty = false
}

// IsDirty reports whether the working copy diverges from the baseline.
func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// State returns the observable session state. Saving wins over dirty.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.saving:
		return StateSaving
	case s.dirty:
		return StateDirty
	default:
		return StateClean
	}
}

// Document returns a clone of the working copy.
func (s *Session) Document() *sitedoc.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working.Clone()
}

// Baseline returns a clone of the persisted document, which is what site
// visitors see.
func (s *Session) Baseline() *sitedoc.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseline.Clone()
}
