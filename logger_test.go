package melt

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/melt/internal/fonttest"
)

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("index", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("face").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

// capture installs a debug logger writing to the returned buffer for the
// duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLogger_Silent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) left an enabled logger")
	}
}

func TestSetLogger_ReceivesLibraryLogs(t *testing.T) {
	tests := []struct {
		name string
		run  func()
		want string
	}{
		{
			name: "broken face",
			run:  func() { Introspect(brokenFont()) },
			want: "melt: face open failed",
		},
		{
			name: "truncated name table",
			run: func() {
				Introspect(fonttest.MustReplace(fonttest.GoRegular(), map[string][]byte{"name": {0, 0, 0, 0}}))
			},
			want: "melt: name table unreadable",
		},
		{
			name: "surrogate codepoint",
			run:  func() { GlyphInfos(fonttest.GoRegular(), 0, []uint32{0xD800}) },
			want: "melt: skipping codepoint",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.run()
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWithLogger_OverridesPackageLogger(t *testing.T) {
	pkg := capture(t)

	var own bytes.Buffer
	Introspect(brokenFont(), WithLogger(slog.New(slog.NewTextHandler(&own, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	if pkg.Len() != 0 {
		t.Errorf("package logger got %q", pkg.String())
	}
	if own.Len() == 0 {
		t.Error("WithLogger logger got nothing")
	}
}

func TestLogger_Concurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("melt: concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabled(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("melt: skipping codepoint", "codepoint", 0xD800)
	}
}
