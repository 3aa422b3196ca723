package wallet

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Freeeeeet/health_wallet/internal/notify"
)

type providerCall struct {
	Method string
	Params []any
}

type fakeProvider struct {
	mu     sync.Mutex
	calls  []providerCall
	handle func(method string, params []any) (any, error)
}

func (f *fakeProvider) Request(_ context.Context, method string, params ...any) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, providerCall{Method: method, Params: params})
	f.mu.Unlock()

	result, err := f.handle(method, params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}

func (f *fakeProvider) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Method)
	}
	return out
}

type noticeRecorder struct {
	mu      sync.Mutex
	notices []notify.Notice
}

func (r *noticeRecorder) Notify(_ context.Context, n notify.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *noticeRecorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Text)
	}
	return out
}
