package counter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

const (
	// DefaultRemotePath is where the counter lives in the realtime database.
	DefaultRemotePath = "/simulations/love_simulator/count.json"

	defaultRemoteTimeout = 5 * time.Second
	defaultMaxRetries    = 16
)

var (
	errConflict = errors.New("etag conflict")
	errNoETag   = errors.New("server returned no ETag")
)

// RemoteStore keeps the counter in a Firebase Realtime Database over REST.
// Increments are compare-and-swap writes keyed on the node's ETag and are
// retried with exponential backoff when another writer wins.
type RemoteStore struct {
	http      *http.Client
	url       string
	authToken string

	// MaxRetries bounds the CAS attempts of a single Increment.
	MaxRetries uint64
	// NewBackOff builds the retry policy. Tests shorten the intervals.
	NewBackOff func() backoff.BackOff
}

// NewRemote creates a client for the counter at baseURL+path.
// A zero timeout falls back to 5s.
func NewRemote(baseURL, path, authToken string, timeout time.Duration) (*RemoteStore, error) {
	if baseURL == "" {
		return nil, storageErr(BackendRemote, OpOpen, errors.New("remote url not configured"))
	}
	if path == "" {
		path = DefaultRemotePath
	}
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &RemoteStore{
		http:       &http.Client{Timeout: timeout},
		url:        strings.TrimRight(baseURL, "/") + path,
		authToken:  authToken,
		MaxRetries: defaultMaxRetries,
		NewBackOff: defaultBackOff,
	}, nil
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second
	return b
}

// URL returns the resolved endpoint without credentials.
func (s *RemoteStore) URL() string { return s.url }

func (s *RemoteStore) Get(ctx context.Context) (int64, error) {
	n, etag, present, err := s.read(ctx)
	if err != nil {
		return 0, storageErr(BackendRemote, OpGet, err)
	}
	if present {
		return n, nil
	}

	// Initialize an absent node. Losing the race to another writer is fine.
	err = s.write(ctx, 0, etag)
	if err != nil && !errors.Is(err, errConflict) {
		return 0, storageErr(BackendRemote, OpGet, err)
	}
	if errors.Is(err, errConflict) {
		n, _, _, err = s.read(ctx)
		if err != nil {
			return 0, storageErr(BackendRemote, OpGet, err)
		}
	}
	return n, nil
}

func (s *RemoteStore) Increment(ctx context.Context) (int64, error) {
	attempt := func() (int64, error) {
		n, etag, _, err := s.read(ctx)
		if err != nil {
			return 0, retryable(err)
		}
		if etag == "" {
			return 0, backoff.Permanent(errNoETag)
		}
		next := n + 1
		if err := s.write(ctx, next, etag); err != nil {
			return 0, retryable(err)
		}
		return next, nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(s.NewBackOff(), s.MaxRetries), ctx)
	n, err := backoff.RetryWithData(attempt, b)
	if err != nil {
		return 0, storageErr(BackendRemote, OpIncrement, err)
	}
	return n, nil
}

func (s *RemoteStore) Close() error {
	s.http.CloseIdleConnections()
	return nil
}

// retryable marks everything except conflicts and server errors permanent.
func retryable(err error) error {
	var se *statusError
	if errors.Is(err, errConflict) || (errors.As(err, &se) && se.code >= 500) {
		return err
	}
	return backoff.Permanent(err)
}

type statusError struct {
	method string
	code   int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.method, e.code, e.body)
}

func (s *RemoteStore) endpoint() string {
	if s.authToken == "" {
		return s.url
	}
	return s.url + "?" + url.Values{"auth": {s.authToken}}.Encode()
}

// read returns the stored value, its ETag and whether the node exists.
func (s *RemoteStore) read(ctx context.Context) (int64, string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint(), nil)
	if err != nil {
		return 0, "", false, err
	}
	req.Header.Set("X-Firebase-ETag", "true")

	resp, err := s.http.Do(req)
	if err != nil {
		return 0, "", false, fmt.Errorf("GET: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", false, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return 0, "", false, &statusError{method: "GET", code: resp.StatusCode, body: string(data)}
	}

	n, present, err := decodeRemote(data)
	return n, resp.Header.Get("ETag"), present, err
}

// write stores n if the node still carries etag. An empty etag writes
// unconditionally.
func (s *RemoteStore) write(ctx context.Context, n int64, etag string) error {
	body := []byte(strconv.FormatInt(n, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.endpoint(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if etag != "" {
		req.Header.Set("if-match", etag)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("PUT: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPreconditionFailed {
		io.Copy(io.Discard, resp.Body)
		return errConflict
	}
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return &statusError{method: "PUT", code: resp.StatusCode, body: string(data)}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// decodeRemote accepts JSON null (absent) or a non-negative integral number.
func decodeRemote(data []byte) (int64, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return 0, false, nil
	}

	var v json.Number
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, true, fmt.Errorf("%w: %s", ErrMalformed, data)
	}
	if n, err := v.Int64(); err == nil && n >= 0 {
		return n, true, nil
	}
	// The database may hand back integral floats such as 12.0.
	f, err := v.Float64()
	if err != nil || f < 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, true, fmt.Errorf("%w: %s", ErrMalformed, data)
	}
	return int64(f), true, nil
}
