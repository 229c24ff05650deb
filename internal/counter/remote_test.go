package counter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// fakeRTDB emulates one Firebase Realtime Database node with ETag
// conditional writes.
type fakeRTDB struct {
	mu      sync.Mutex
	value   string
	version int
	puts    int
	fail    int // status returned for every request when non-zero
	noETag  bool
	lastURL string

	srv *httptest.Server
}

func newFakeRTDB(t *testing.T, initial string) *fakeRTDB {
	t.Helper()
	f := &fakeRTDB{value: initial}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeRTDB) etag() string { return "v" + strconv.Itoa(f.version) }

func (f *fakeRTDB) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastURL = r.URL.String()

	if f.fail != 0 {
		http.Error(w, `{"error":"unavailable"}`, f.fail)
		return
	}
	if r.URL.Path != DefaultRemotePath {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		if r.Header.Get("X-Firebase-ETag") == "true" && !f.noETag {
			w.Header().Set("ETag", f.etag())
		}
		io.WriteString(w, f.value)
	case http.MethodPut:
		if m := r.Header.Get("if-match"); m != "" && m != f.etag() {
			w.Header().Set("ETag", f.etag())
			w.WriteHeader(http.StatusPreconditionFailed)
			io.WriteString(w, f.value)
			return
		}
		body, _ := io.ReadAll(r.Body)
		f.value = string(body)
		f.version++
		f.puts++
		w.Write(body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeRTDB) stored() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *fakeRTDB) setFail(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = code
}

func (f *fakeRTDB) requests() (puts int, lastURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts, f.lastURL
}

func testRemote(t *testing.T, f *fakeRTDB) *RemoteStore {
	t.Helper()
	s, err := NewRemote(f.srv.URL, "", "", time.Second)
	if err != nil {
		t.Fatalf("NewRemote: %v", err)
	}
	s.MaxRetries = 200
	s.NewBackOff = func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = time.Millisecond
		b.MaxInterval = 5 * time.Millisecond
		b.MaxElapsedTime = 0
		return b
	}
	return s
}

func TestNewRemotePath(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://x.firebaseio.com", "", "https://x.firebaseio.com/simulations/love_simulator/count.json"},
		{"https://x.firebaseio.com/", "/runs/count.json", "https://x.firebaseio.com/runs/count.json"},
		{"https://x.firebaseio.com", "runs/count", "https://x.firebaseio.com/runs/count.json"},
	}
	for _, tt := range tests {
		s, err := NewRemote(tt.base, tt.path, "", 0)
		if err != nil {
			t.Fatalf("NewRemote: %v", err)
		}
		if got := s.URL(); got != tt.want {
			t.Errorf("URL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}

	if _, err := NewRemote("", "", "", 0); err == nil {
		t.Error("empty url: expected error")
	}
}

func TestRemoteGetInitializesNull(t *testing.T) {
	f := newFakeRTDB(t, "null")
	s := testRemote(t, f)

	n, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if n != 0 {
		t.Errorf("Get = %d, want 0", n)
	}
	if got := f.stored(); got != "0" {
		t.Errorf("stored = %q, want 0 written", got)
	}
}

func TestRemoteGetExisting(t *testing.T) {
	f := newFakeRTDB(t, "41")
	s := testRemote(t, f)

	n, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if n != 41 {
		t.Errorf("Get = %d, want 41", n)
	}
	if puts, _ := f.requests(); puts != 0 {
		t.Errorf("puts = %d, want no write for existing value", puts)
	}
}

func TestRemoteIncrement(t *testing.T) {
	f := newFakeRTDB(t, "41")
	s := testRemote(t, f)

	n, err := s.Increment(context.Background())
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if n != 42 {
		t.Errorf("Increment = %d, want 42", n)
	}
	if got := f.stored(); got != "42" {
		t.Errorf("stored = %q, want 42", got)
	}
}

func TestRemoteAuthToken(t *testing.T) {
	f := newFakeRTDB(t, "1")
	s := testRemote(t, f)
	s.authToken = "secret"

	if _, err := s.Get(context.Background()); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, last := f.requests(); last != DefaultRemotePath+"?auth=secret" {
		t.Errorf("request = %q, want auth query", last)
	}
}

func TestRemoteMalformed(t *testing.T) {
	for _, raw := range []string{`"many"`, `{"count":3}`, `-2`, `1.5`} {
		t.Run(raw, func(t *testing.T) {
			f := newFakeRTDB(t, raw)
			s := testRemote(t, f)

			if _, err := s.Get(context.Background()); !errors.Is(err, ErrMalformed) {
				t.Errorf("Get err = %v, want ErrMalformed", err)
			}
			if _, err := s.Increment(context.Background()); !errors.Is(err, ErrMalformed) {
				t.Errorf("Increment err = %v, want ErrMalformed", err)
			}
			if got := f.stored(); got != raw {
				t.Errorf("stored = %q, want untouched %q", got, raw)
			}
		})
	}
}

func TestDecodeRemote(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		present bool
		wantErr bool
	}{
		{"null", 0, false, false},
		{"", 0, false, false},
		{"0", 0, true, false},
		{" 17\n", 17, true, false},
		{"12.0", 12, true, false},
		{"1.5", 0, true, true},
		{"-1", 0, true, true},
		{"true", 0, true, true},
		{"9223372036854775807", 9223372036854775807, true, false},
		{"9223372036854775808", 0, true, true},
		{"9.3e18", 0, true, true},
	}
	for _, tt := range tests {
		n, present, err := decodeRemote([]byte(tt.raw))
		if (err != nil) != tt.wantErr {
			t.Errorf("decodeRemote(%q) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if n != tt.want || present != tt.present {
			t.Errorf("decodeRemote(%q) = %d, %v; want %d, %v", tt.raw, n, present, tt.want, tt.present)
		}
	}
}

func TestRemoteIncrementRequiresETag(t *testing.T) {
	f := newFakeRTDB(t, "5")
	f.noETag = true
	s := testRemote(t, f)

	_, err := s.Increment(context.Background())
	var se *StorageError
	if !errors.As(err, &se) || se.Op != OpIncrement || !errors.Is(err, errNoETag) {
		t.Fatalf("err = %v, want increment StorageError for missing ETag", err)
	}
	if puts, _ := f.requests(); puts != 0 {
		t.Errorf("puts = %d, want no unconditional write", puts)
	}
	if got := f.stored(); got != "5" {
		t.Errorf("stored = %q, want untouched 5", got)
	}
}

func TestRemoteGetInitializesWithoutETag(t *testing.T) {
	f := newFakeRTDB(t, "null")
	f.noETag = true
	s := testRemote(t, f)

	if n, err := s.Get(context.Background()); err != nil || n != 0 {
		t.Fatalf("Get = %d, %v; want 0, nil", n, err)
	}
	if got := f.stored(); got != "0" {
		t.Errorf("stored = %q, want 0 written", got)
	}
}

func TestRemoteClientErrorIsPermanent(t *testing.T) {
	f := newFakeRTDB(t, "3")
	f.setFail(http.StatusUnauthorized)
	s := testRemote(t, f)

	_, err := s.Increment(context.Background())
	var se *StorageError
	if !errors.As(err, &se) || se.Op != OpIncrement || se.Backend != BackendRemote {
		t.Fatalf("err = %v, want remote increment StorageError", err)
	}
}

func TestRemoteRespectsContext(t *testing.T) {
	f := newFakeRTDB(t, "3")
	f.setFail(http.StatusServiceUnavailable)
	s := testRemote(t, f)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := s.Increment(ctx); err == nil {
		t.Fatal("expected error while the server is unavailable")
	}
}
