package clipboard

import (
	"errors"
	"testing"

	abacuserrors "github.com/zhubert/abacus/internal/errors"
)

type fakeClipboard struct {
	data    []byte
	inits   int
	initErr error
}

func (f *fakeClipboard) install(t *testing.T) {
	t.Helper()
	SetBackend(
		func() error { f.inits++; return f.initErr },
		func() []byte { return f.data },
		func(b []byte) { f.data = b },
	)
	t.Cleanup(ResetBackend)
}

func TestWriteThenRead(t *testing.T) {
	fake := &fakeClipboard{}
	fake.install(t)

	if err := WriteText("42.5"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	got, err := ReadText()
	if err != nil || got != "42.5" {
		t.Errorf("ReadText() = %q, %v", got, err)
	}
	if fake.inits != 1 {
		t.Errorf("init called %d times, want 1", fake.inits)
	}
}

func TestReadText_TrimsAndEmpty(t *testing.T) {
	fake := &fakeClipboard{}
	fake.install(t)

	if got, err := ReadText(); err != nil || got != "" {
		t.Errorf("empty clipboard ReadText() = %q, %v", got, err)
	}

	fake.data = []byte("  12+3\n")
	if got, _ := ReadText(); got != "12+3" {
		t.Errorf("ReadText() = %q, want %q", got, "12+3")
	}
}

func TestInitFailure(t *testing.T) {
	fake := &fakeClipboard{initErr: errors.New("no display")}
	fake.install(t)

	err := WriteText("1")
	if !abacuserrors.Is(err, abacuserrors.KindIO) {
		t.Errorf("WriteText() error = %v, want KindIO", err)
	}
	if fake.data != nil {
		t.Error("nothing should be written when init fails")
	}

	// A failed init is retried on the next call.
	fake.initErr = nil
	if err := WriteText("1"); err != nil {
		t.Errorf("WriteText() after recovery error: %v", err)
	}
	if fake.inits != 2 {
		t.Errorf("init called %d times, want 2", fake.inits)
	}
}
