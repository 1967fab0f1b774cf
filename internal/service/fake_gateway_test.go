package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pet-tracker/internal/adapter"
	"github.com/MKhiriev/go-pet-tracker/internal/apierror"
)

// route answers one request. path is the full request path; body is the
// value passed to the gateway.
type route func(path string, body any) (any, error)

// fakeGateway is an in-memory [adapter.Gateway]. Responses pass through a
// JSON round trip so decoding behaves as it does over HTTP.
type fakeGateway struct {
	mu       sync.Mutex
	routes   map[string]route
	prefixes map[string]route
	calls    []string
}

var _ adapter.Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{routes: make(map[string]route), prefixes: make(map[string]route)}
}

func (f *fakeGateway) on(method, path string, r route) *fakeGateway {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = r
	return f
}

// onPrefix registers r for every path starting with prefix that has no exact
// route.
func (f *fakeGateway) onPrefix(method, prefix string, r route) *fakeGateway {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefixes[method+" "+prefix] = r
	return f
}

func (f *fakeGateway) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeGateway) Get(ctx context.Context, path string, result any) error {
	return f.do(ctx, http.MethodGet, path, nil, result)
}

func (f *fakeGateway) Post(ctx context.Context, path string, body, result any) error {
	return f.do(ctx, http.MethodPost, path, body, result)
}

func (f *fakeGateway) Put(ctx context.Context, path string, body, result any) error {
	return f.do(ctx, http.MethodPut, path, body, result)
}

func (f *fakeGateway) Delete(ctx context.Context, path string, result any) error {
	return f.do(ctx, http.MethodDelete, path, nil, result)
}

func (f *fakeGateway) do(_ context.Context, method, path string, body, result any) error {
	key := method + " " + path

	f.mu.Lock()
	f.calls = append(f.calls, key)
	r, ok := f.routes[key]
	if !ok {
		longest := ""
		for prefix, pr := range f.prefixes {
			if strings.HasPrefix(key, prefix) && len(prefix) > len(longest) {
				longest, r, ok = prefix, pr, true
			}
		}
	}
	f.mu.Unlock()

	if !ok {
		e := apierror.Validation(apierror.FieldError{Message: http.StatusText(http.StatusNotFound)})
		e.Status = http.StatusNotFound
		return e
	}

	resp, err := r(path, body)
	if err != nil {
		return err
	}
	if result == nil || resp == nil {
		return nil
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return apierror.Unknown("encode fake response: "+err.Error(), err)
	}
	if err = json.Unmarshal(raw, result); err != nil {
		return apierror.Unknown("decode response: "+err.Error(), err)
	}
	return nil
}

// lastSegment returns the path segment after the final slash.
func lastSegment(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
