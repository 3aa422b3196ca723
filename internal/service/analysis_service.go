package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/client"
	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/Freeeeeet/health_wallet/internal/wallet"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// paymentGas - 21000, обычный перевод
const paymentGas = "0x5208"

var (
	ErrUnsupportedFile     = errors.New("only medical report files are allowed (PDF, JPG, PNG, DOCX)")
	ErrUnknownAnalysisType = errors.New("unknown analysis type")
	ErrInvalidPrice        = errors.New("invalid price")
)

// AnalysisFile - отчёт, отправляемый на анализ
type AnalysisFile struct {
	Name    string
	Size    int64
	Content io.Reader
}

type AnalysisService struct {
	state    *state.AppState
	wallets  *WalletService
	network  ChainEnsurer
	sender   TxSender
	backend  AnalysisBackend
	saver    StateSaver
	notifier notify.Notifier
	logger   *zap.Logger
	treasury string
	decimals int
	now      func() time.Time
}

func NewAnalysisService(
	st *state.AppState,
	wallets *WalletService,
	network ChainEnsurer,
	sender TxSender,
	backend AnalysisBackend,
	saver StateSaver,
	notifier notify.Notifier,
	logger *zap.Logger,
	treasuryAddress string,
	decimals int,
) *AnalysisService {
	return &AnalysisService{
		state:    st,
		wallets:  wallets,
		network:  network,
		sender:   sender,
		backend:  backend,
		saver:    saver,
		notifier: notifier,
		logger:   logger,
		treasury: treasuryAddress,
		decimals: decimals,
		now:      time.Now,
	}
}

// PayAndAnalyze загружает отчёт, оплачивает анализ и ждёт результата
func (s *AnalysisService) PayAndAnalyze(ctx context.Context, file AnalysisFile, analysisType string) (*model.Analysis, error) {
	if err := validateReport(file); err != nil {
		notify.Error(ctx, s.notifier, "Please select a valid medical report file (PDF, JPG, PNG, DOCX) under 10MB")
		return nil, err
	}
	if _, ok := model.AnalysisPrices[analysisType]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnalysisType, analysisType)
	}

	from, ok := s.wallets.Address()
	if !ok {
		notify.Warning(ctx, s.notifier, "Please connect your wallet first")
		_, _ = s.wallets.Connect(ctx)
		return nil, wallet.ErrWalletNotConnected
	}

	if err := s.network.EnsureChain(ctx); err != nil {
		return nil, fmt.Errorf("ensure chain: %w", err)
	}

	patientID := AnonymousPatientID
	if u := s.state.CurrentUser(); u != nil && u.ID != "" {
		patientID = u.ID
	}

	upload, err := s.backend.Upload(ctx, client.UploadRequest{
		FileName:      file.Name,
		Content:       file.Content,
		AnalysisType:  analysisType,
		PatientID:     patientID,
		WalletAddress: from,
	})
	if err != nil {
		notify.Error(ctx, s.notifier, "Failed to upload file")
		return nil, err
	}

	value, err := PriceToWei(upload.Price, s.decimals)
	if err != nil {
		return nil, fmt.Errorf("analysis %s: %w", upload.AnalysisID, err)
	}

	txHash, err := s.sender.Send(ctx, wallet.Tx{
		From:  from,
		To:    s.treasury,
		Value: hexutil.EncodeBig(value),
		Gas:   paymentGas,
	})
	if err != nil {
		if errors.Is(err, wallet.ErrUserRejected) {
			notify.Info(ctx, s.notifier, "Transaction rejected by user")
		} else {
			notify.Error(ctx, s.notifier, "Payment failed: %s", err.Error())
		}
		s.logger.Error("Analysis payment failed",
			zap.String("analysis_id", upload.AnalysisID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Analysis paid",
		zap.String("analysis_id", upload.AnalysisID),
		zap.String("price", upload.Price),
		zap.String("tx_hash", txHash),
	)

	if _, err := s.backend.VerifyPayment(ctx, model.VerifyPaymentRequest{
		AnalysisID:      upload.AnalysisID,
		TransactionHash: txHash,
		WalletAddress:   from,
	}); err != nil {
		notify.Error(ctx, s.notifier, "Payment verification failed")
		return nil, err
	}

	analysis, err := s.backend.WaitForCompletion(ctx, upload.AnalysisID)
	if err != nil {
		notify.Error(ctx, s.notifier, "Analysis failed: %s", err.Error())
		return nil, err
	}

	s.state.AppendAudit(model.AuditLogEntry{
		Action:    model.AuditActionAnalysis,
		Doctor:    "AI System",
		Record:    file.Name,
		Timestamp: s.now(),
		TxHash:    txHash,
	})
	s.saver.SaveAsync(ctx, s.state)

	notify.Success(ctx, s.notifier, "AI analysis completed successfully!")
	return analysis, nil
}

// History - анализы текущего кошелька
func (s *AnalysisService) History(ctx context.Context) ([]model.Analysis, error) {
	from, ok := s.wallets.Address()
	if !ok {
		return nil, wallet.ErrWalletNotConnected
	}
	return s.backend.History(ctx, from)
}

// PriceToWei переводит десятичную цену в наименьшие единицы валюты
func PriceToWei(price string, decimals int) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(price)
	if !ok || r.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	if !r.IsInt() {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidPrice, price, decimals)
	}
	return new(big.Int).Set(r.Num()), nil
}

func validateReport(file AnalysisFile) error {
	if file.Size > MaxRecordSize {
		return fmt.Errorf("%w: %s", ErrFileTooLarge, file.Name)
	}
	switch strings.ToLower(filepath.Ext(file.Name)) {
	case ".pdf", ".jpg", ".jpeg", ".png", ".docx":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, file.Name)
	}
}
