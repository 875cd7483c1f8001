package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
	"github.com/preston-bernstein/injury-report-service/internal/providers"
	"github.com/preston-bernstein/injury-report-service/internal/roster"
)

func TestFixturesHelper(t *testing.T) {
	table := SampleRoster()
	if table.Len() != 2 {
		t.Fatalf("expected default sample roster, got %d entries", table.Len())
	}
	custom := SampleRoster(roster.Entry{ID: 9, Name: "Jared Goff"})
	if id, ok := custom.Match("Jared Goff"); !ok || id != 9 {
		t.Fatalf("unexpected custom roster match %d %v", id, ok)
	}
	rec := SampleRecord("Jalen Hurts", "OUT")
	if rec.PlayerName != "Jalen Hurts" || rec.RawStatus != "OUT" {
		t.Fatalf("unexpected record %+v", rec)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid roster")
		}
	}()
	SampleRoster(roster.Entry{ID: 0, Name: "bad"})
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error from ErrHTTPServer")
	}
	_ = e.Shutdown(context.Background())
	if e.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for ErrHTTPServer")
	}

	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	records := []injuries.Record{SampleRecord("Jalen Hurts", "OUT")}

	p := GoodProvider{Records: records}
	if got, _ := p.FetchInjuries(ctx); len(got) != 1 {
		t.Fatalf("expected records from GoodProvider")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchInjuries(ctx); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	if got, err := (EmptyProvider{}).FetchInjuries(ctx); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v err %v", got, err)
	}

	if _, err := (UnavailableProvider{}).FetchInjuries(ctx); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}

	counting := &CountingProvider{Records: records}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = counting.FetchInjuries(ctx)
		}()
	}
	wg.Wait()
	if counting.Calls() != 4 {
		t.Fatalf("expected 4 calls, got %d", counting.Calls())
	}
}
