package editor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"trainerhub-app/internal/domain/sitedoc"
)

type fakeStore struct {
	mu           sync.Mutex
	doc          *sitedoc.Document
	loadErr      error
	replaceErr   error
	replaceCalls int

	// when set, Replace signals entered and waits on release
	entered chan struct{}
	release chan struct{}
}

func (s *fakeStore) Load(context.Context) (*sitedoc.Document, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.doc.Clone(), nil
}

func (s *fakeStore) Replace(_ context.Context, doc *sitedoc.Document) error {
	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceCalls++
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.doc = doc.Clone()
	return nil
}

func (s *fakeStore) stored() *sitedoc.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

type recorder struct {
	mu       sync.Mutex
	messages []string
	kinds    []NotifyKind
}

func (r *recorder) notify(message string, kind NotifyKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	r.kinds = append(r.kinds, kind)
}

func (r *recorder) count(kind NotifyKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T) (*Session, *fakeStore, *recorder) {
	t.Helper()
	st := &fakeStore{doc: sitedoc.Default()}
	rec := &recorder{}
	return Open(context.Background(), st, rec.notify), st, rec
}

func TestOpenFallsBackToDefaultOnLoadError(t *testing.T) {
	st := &fakeStore{loadErr: errors.New("store down")}
	s := Open(context.Background(), st, nil)

	if s.IsDirty() {
		t.Error("fresh session must be clean")
	}
	if !s.Document().Equal(sitedoc.Default()) {
		t.Error("load failure must substitute the built-in default document")
	}
}

func TestDirtyFlagEditThenRevert(t *testing.T) {
	s, _, _ := newTestSession(t)
	original := s.Baseline().General.Tagline

	if s.IsDirty() || s.State() != StateClean {
		t.Fatal("session must start clean")
	}

	s.Mutate(func(d *sitedoc.Document) { d.General.Tagline = "New tagline" })
	if !s.IsDirty() || s.State() != StateDirty {
		t.Fatal("edit must mark the session dirty")
	}

	s.Mutate(func(d *sitedoc.Document) { d.General.Tagline = original })
	if s.IsDirty() || s.State() != StateClean {
		t.Error("reverting to the baseline value must collapse back to clean")
	}
}

func TestMutateNoOpStaysClean(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mutate(func(d *sitedoc.Document) {})
	if s.IsDirty() {
		t.Error("identity mutation must not mark the session dirty")
	}
}

func TestWorkingCopyNeverAliasesBaseline(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mutate(func(d *sitedoc.Document) { d.Services[0].Title = "Edited" })

	if s.Baseline().Services[0].Title == "Edited" {
		t.Error("unsaved edit leaked into the baseline")
	}
}

func TestSavePublishesSnapshot(t *testing.T) {
	s, st, rec := newTestSession(t)
	s.Mutate(func(d *sitedoc.Document) { d.General.SiteName = "Saved Name" })
	edited := s.Document()

	if err := s.Save(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !st.stored().Equal(edited) {
		t.Error("store must hold the working copy as of save time")
	}
	if !s.Baseline().Equal(edited) {
		t.Error("baseline must advance to the saved document")
	}
	if s.IsDirty() {
		t.Error("session must be clean after a successful save")
	}
	if rec.count(NotifySuccess) != 1 {
		t.Errorf("want exactly one success notification, got %d", rec.count(NotifySuccess))
	}
}

func TestSaveWhileCleanIsNoOp(t *testing.T) {
	s, st, rec := newTestSession(t)
	if err := s.Save(context.Background()); err != nil {
		t.Fatal(err)
	}
	if st.replaceCalls != 0 {
		t.Error("clean save must not touch the store")
	}
	if len(rec.kinds) != 0 {
		t.Error("clean save must not notify")
	}
}

func TestFailedSavePreservesEdits(t *testing.T) {
	s, st, rec := newTestSession(t)
	baseline := s.Baseline()

	s.Mutate(func(d *sitedoc.Document) { d.General.SiteName = "Unsaved" })
	edited := s.Document()

	st.replaceErr = errors.New("disk full")
	err := s.Save(context.Background())
	if err == nil {
		t.Fatal("expected save error")
	}

	if !s.IsDirty() {
		t.Error("failed save must leave the session dirty")
	}
	if !s.Document().Equal(edited) {
		t.Error("failed save must not discard the working copy")
	}
	if !s.Baseline().Equal(baseline) {
		t.Error("failed save must not advance the baseline")
	}
	if rec.count(NotifyError) != 1 {
		t.Errorf("want exactly one error notification, got %d", rec.count(NotifyError))
	}
}

func TestNoConcurrentSaves(t *testing.T) {
	s, st, _ := newTestSession(t)
	st.entered = make(chan struct{})
	st.release = make(chan struct{})

	s.Mutate(func(d *sitedoc.Document) { d.General.SiteName = "First" })

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()
	<-st.entered

	if s.State() != StateSaving {
		t.Error("state must report saving while the write is pending")
	}
	if err := s.Save(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Errorf("second save must be rejected, got %v", err)
	}

	close(st.release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if st.replaceCalls != 1 {
		t.Errorf("want exactly one store write, got %d", st.replaceCalls)
	}
}

func TestMutationDuringSaveStaysDirty(t *testing.T) {
	s, st, _ := newTestSession(t)
	st.entered = make(chan struct{})
	st.release = make(chan struct{})

	s.Mutate(func(d *sitedoc.Document) { d.General.SiteName = "Snapshot" })
	snapshot := s.Document()

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()
	<-st.entered

	// edit racing in while the write is pending
	s.Mutate(func(d *sitedoc.Document) { d.General.Tagline = "Late edit" })

	close(st.release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	if !st.stored().Equal(snapshot) {
		t.Error("save must publish the snapshot taken when save began")
	}
	if !s.IsDirty() {
		t.Error("the racing edit must leave the session dirty")
	}
}

func TestDiscardResetsToBaseline(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Mutate(func(d *sitedoc.Document) { d.General.SiteName = "Scratch" })

	s.Discard()
	if s.IsDirty() {
		t.Error("discard must leave the session clean")
	}
	if !s.Document().Equal(s.Baseline()) {
		t.Error("discard must reset the working copy to the baseline")
	}
}

func TestSaveTimeoutContext(t *testing.T) {
	// context is passed through to the store untouched
	s, st, _ := newTestSession(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s.Mutate(func(d *sitedoc.Document) { d.General.SiteName = "Ctx" })
	if err := s.Save(ctx); err != nil {
		t.Fatal(err)
	}
	if st.replaceCalls != 1 {
		t.Errorf("want one store write, got %d", st.replaceCalls)
	}
}
