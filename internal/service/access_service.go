package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/Freeeeeet/health_wallet/internal/wallet"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessStats - счётчики для дашборда
type AccessStats struct {
	Pending  int
	Approved int
}

type AccessService struct {
	state    *state.AppState
	wallets  *WalletService
	network  ChainEnsurer
	sender   TxSender
	saver    StateSaver
	notifier notify.Notifier
	logger   *zap.Logger
	contract string
	now      func() time.Time
}

func NewAccessService(
	st *state.AppState,
	wallets *WalletService,
	network ChainEnsurer,
	sender TxSender,
	saver StateSaver,
	notifier notify.Notifier,
	logger *zap.Logger,
	contractAddress string,
) *AccessService {
	return &AccessService{
		state:    st,
		wallets:  wallets,
		network:  network,
		sender:   sender,
		saver:    saver,
		notifier: notifier,
		logger:   logger,
		contract: contractAddress,
		now:      time.Now,
	}
}

// ============ Одобрение и отклонение ============

// Approve выдаёт доступ через контракт и переносит заявку в одобренные.
// Состояние меняется сразу после того, как провайдер принял транзакцию.
func (s *AccessService) Approve(ctx context.Context, requestID string) (model.AccessRequest, error) {
	from, ok := s.wallets.Address()
	if !ok {
		notify.Warning(ctx, s.notifier, "Please connect your wallet to approve access")
		// Ошибка подключения уже показана пользователю
		_, _ = s.wallets.Connect(ctx)
		return model.AccessRequest{}, wallet.ErrWalletNotConnected
	}

	if err := s.network.EnsureChain(ctx); err != nil {
		return model.AccessRequest{}, fmt.Errorf("ensure chain: %w", err)
	}

	req, ok := s.state.FindPending(requestID)
	if !ok {
		return model.AccessRequest{}, fmt.Errorf("%w: %s", state.ErrRequestNotFound, requestID)
	}

	now := s.now()
	id := wallet.ExtractRequestID(req.ID, now)
	doctor, err := wallet.ParseAddress(req.DoctorAddress)
	if err != nil {
		s.logger.Warn("Invalid doctor address, granting to zero address",
			zap.String("request_id", req.ID),
			zap.String("doctor_address", req.DoctorAddress),
		)
	}

	txHash, err := s.sender.Send(ctx, wallet.Tx{
		From: from,
		To:   s.contract,
		Data: wallet.EncodeGrantAccessHex(id, doctor),
	})
	if err != nil {
		if errors.Is(err, wallet.ErrUserRejected) {
			notify.Info(ctx, s.notifier, "Transaction rejected by user")
		} else {
			notify.Error(ctx, s.notifier, "Transaction failed: %s", err.Error())
		}
		s.logger.Error("Failed to approve access request",
			zap.String("request_id", req.ID),
			zap.Error(err),
		)
		return model.AccessRequest{}, err
	}

	approved, err := s.state.ApproveRequest(req.ID, txHash, now)
	if err != nil {
		// Заявку успели отклонить, пока шла транзакция
		s.logger.Error("Access request disappeared before approval was recorded",
			zap.String("request_id", req.ID),
			zap.String("tx_hash", txHash),
			zap.Error(err),
		)
		return model.AccessRequest{}, err
	}
	s.saver.SaveAsync(ctx, s.state)

	s.logger.Info("Access request approved",
		zap.String("request_id", approved.ID),
		zap.String("doctor", approved.DoctorName),
		zap.String("tx_hash", txHash),
	)
	notify.Success(ctx, s.notifier, "Access Approved on Blockchain!")

	return approved, nil
}

// Reject отклоняет заявку без транзакции
func (s *AccessService) Reject(ctx context.Context, requestID string) (model.AccessRequest, error) {
	rejected, err := s.state.RejectRequest(requestID, s.now())
	if err != nil {
		return model.AccessRequest{}, err
	}
	s.saver.SaveAsync(ctx, s.state)

	s.logger.Info("Access request rejected",
		zap.String("request_id", rejected.ID),
		zap.String("doctor", rejected.DoctorName),
	)
	notify.Info(ctx, s.notifier, "Access request rejected")

	return rejected, nil
}

// ============ Просмотр ============

func (s *AccessService) Pending() []model.AccessRequest {
	return s.state.PendingRequests()
}

func (s *AccessService) Approved() []model.AccessRequest {
	return s.state.ApprovedRequests()
}

func (s *AccessService) Stats() AccessStats {
	return AccessStats{
		Pending:  len(s.state.PendingRequests()),
		Approved: len(s.state.ApprovedRequests()),
	}
}

func (s *AccessService) AuditLog() []model.AuditLogEntry {
	return s.state.AuditLog()
}

// SeedSamples заполняет пустые списки демонстрационными данными
func (s *AccessService) SeedSamples(ctx context.Context) {
	now := s.now()
	s.state.SeedRequests(SamplePendingRequests(), SampleApprovedRequests())
	s.state.SeedAudit(SampleAuditLog(now))
	s.saver.SaveAsync(ctx, s.state)
}

// Submit добавляет новую заявку врача
func (s *AccessService) Submit(ctx context.Context, req model.AccessRequest) (model.AccessRequest, error) {
	now := s.now()
	if req.ID == "" {
		req.ID = "req_" + uuid.NewString()
	}
	if req.RequestDate == "" {
		req.RequestDate = now.Format(time.DateOnly)
	}

	if err := s.state.AddPending(req); err != nil {
		return model.AccessRequest{}, fmt.Errorf("add access request: %w", err)
	}
	s.saver.SaveAsync(ctx, s.state)

	req.Status = model.RequestStatusPending
	s.logger.Info("Access request submitted",
		zap.String("request_id", req.ID),
		zap.String("doctor", req.DoctorName),
	)
	return req, nil
}
