package service

import (
	"context"

	"github.com/Freeeeeet/health_wallet/internal/client"
	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/Freeeeeet/health_wallet/internal/wallet"
)

// ChainEnsurer - *wallet.NetworkAdapter
type ChainEnsurer interface {
	EnsureChain(ctx context.Context) error
}

// TxSender - *wallet.Submitter
type TxSender interface {
	Send(ctx context.Context, tx wallet.Tx) (string, error)
}

// StateSaver - *state.Persister
type StateSaver interface {
	SaveAsync(ctx context.Context, s *state.AppState)
}

// AnalysisBackend - *client.AnalysisClient
type AnalysisBackend interface {
	Upload(ctx context.Context, in client.UploadRequest) (*model.UploadResponse, error)
	VerifyPayment(ctx context.Context, in model.VerifyPaymentRequest) (*model.VerifyPaymentResponse, error)
	WaitForCompletion(ctx context.Context, id string) (*model.Analysis, error)
	History(ctx context.Context, walletAddress string) ([]model.Analysis, error)
}
