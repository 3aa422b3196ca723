package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/client"
	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/Freeeeeet/health_wallet/internal/wallet"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

const (
	testContract = "0x96af7aFA67A96f2Edff04032E74288ED8b472932"
	testTreasury = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	patientAddr  = "0x1111111111111111111111111111111111111111"
)

type fakeProvider struct {
	mu       sync.Mutex
	methods  []string
	accounts []string
	err      error
	sendErrs []error
	sent     []wallet.Tx
}

func (f *fakeProvider) Request(_ context.Context, method string, params ...any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.methods = append(f.methods, method)

	switch method {
	case "eth_requestAccounts":
		if f.err != nil {
			return nil, f.err
		}
		return json.Marshal(f.accounts)
	case "eth_sendTransaction":
		f.sent = append(f.sent, params[0].(wallet.Tx))
		if len(f.sendErrs) > 0 {
			err := f.sendErrs[0]
			f.sendErrs = f.sendErrs[1:]
			if err != nil {
				return nil, err
			}
		}
		return json.Marshal("0xdeadbeef")
	}
	return json.Marshal(nil)
}

type fakeNetwork struct {
	err   error
	calls int
}

func (f *fakeNetwork) EnsureChain(context.Context) error {
	f.calls++
	return f.err
}

type fakeSaver struct {
	saves int
}

func (f *fakeSaver) SaveAsync(context.Context, *state.AppState) {
	f.saves++
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

func (r *noticeRecorder) last() notify.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return notify.Notice{}
	}
	return r.notices[len(r.notices)-1]
}

type fakeBackend struct {
	uploads  []client.UploadRequest
	verified []model.VerifyPaymentRequest
	price    string
	waitErr  error
	history  []model.Analysis
}

func (f *fakeBackend) Upload(_ context.Context, in client.UploadRequest) (*model.UploadResponse, error) {
	f.uploads = append(f.uploads, in)
	return &model.UploadResponse{Success: true, AnalysisID: "analysis_1", Price: f.price}, nil
}

func (f *fakeBackend) VerifyPayment(_ context.Context, in model.VerifyPaymentRequest) (*model.VerifyPaymentResponse, error) {
	f.verified = append(f.verified, in)
	return &model.VerifyPaymentResponse{Success: true, AnalysisID: in.AnalysisID, Status: model.AnalysisStatusCompleted}, nil
}

func (f *fakeBackend) WaitForCompletion(_ context.Context, id string) (*model.Analysis, error) {
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	return &model.Analysis{ID: id, Status: model.AnalysisStatusCompleted}, nil
}

func (f *fakeBackend) History(context.Context, string) ([]model.Analysis, error) {
	return f.history, nil
}

type fixture struct {
	state    *state.AppState
	provider *fakeProvider
	network  *fakeNetwork
	saver    *fakeSaver
	notices  *noticeRecorder
	wallets  *WalletService
	access   *AccessService
}

func newFixture(maxAttempts int) *fixture {
	f := &fixture{
		state:    state.New(),
		provider: &fakeProvider{accounts: []string{patientAddr}},
		network:  &fakeNetwork{},
		saver:    &fakeSaver{},
		notices:  &noticeRecorder{},
	}
	logger := zap.NewNop()

	f.wallets = NewWalletService(f.provider, f.network, f.state, f.saver, f.notices, logger)
	sender := wallet.NewSubmitter(f.provider, f.notices, logger, maxAttempts, time.Millisecond)
	f.access = NewAccessService(f.state, f.wallets, f.network, sender, f.saver, f.notices, logger, testContract)
	f.access.now = func() time.Time { return fixedNow }
	return f
}
