package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/sethvargo/go-retry"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultPollAttempts = 30
)

type UploadRequest struct {
	FileName      string
	Content       io.Reader
	AnalysisType  string
	PatientID     string
	WalletAddress string
}

// AnalysisClient - клиент бэкенда AI-анализа
type AnalysisClient struct {
	base
	pollInterval time.Duration
	pollAttempts int
}

func NewAnalysisClient(baseURL string, httpClient *http.Client) *AnalysisClient {
	return &AnalysisClient{
		base:         newBase(baseURL, httpClient),
		pollInterval: DefaultPollInterval,
		pollAttempts: DefaultPollAttempts,
	}
}

// WithPolling меняет интервал и число попыток опроса статуса
func (c *AnalysisClient) WithPolling(interval time.Duration, attempts int) *AnalysisClient {
	c.pollInterval = interval
	c.pollAttempts = attempts
	return c
}

func (c *AnalysisClient) Config(ctx context.Context) (*model.Chain, error) {
	var chain model.Chain
	if err := c.doJSON(ctx, http.MethodGet, "/api/shardeum-config", nil, &chain); err != nil {
		return nil, fmt.Errorf("get chain config: %w", err)
	}
	return &chain, nil
}

func (c *AnalysisClient) Pricing(ctx context.Context) (map[string]string, error) {
	prices := map[string]string{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/pricing", nil, &prices); err != nil {
		return nil, fmt.Errorf("get pricing: %w", err)
	}
	return prices, nil
}

// Upload загружает отчёт multipart-формой в поле medicalReport
func (c *AnalysisClient) Upload(ctx context.Context, in UploadRequest) (*model.UploadResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("medicalReport", in.FileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, in.Content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}

	fields := map[string]string{
		"analysisType":  in.AnalysisType,
		"patientId":     in.PatientID,
		"walletAddress": in.WalletAddress,
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-report", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out model.UploadResponse
	if err := c.send(req, &out); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}
	return &out, nil
}

func (c *AnalysisClient) VerifyPayment(ctx context.Context, in model.VerifyPaymentRequest) (*model.VerifyPaymentResponse, error) {
	var out model.VerifyPaymentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/verify-payment", in, &out); err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	return &out, nil
}

func (c *AnalysisClient) Analysis(ctx context.Context, id string) (*model.Analysis, error) {
	var out model.Analysis
	if err := c.doJSON(ctx, http.MethodGet, "/api/analysis/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return &out, nil
}

// History возвращает анализы кошелька, новые первыми
func (c *AnalysisClient) History(ctx context.Context, walletAddress string) ([]model.Analysis, error) {
	var out []model.Analysis
	if err := c.doJSON(ctx, http.MethodGet, "/api/analysis-history/"+url.PathEscape(walletAddress), nil, &out); err != nil {
		return nil, fmt.Errorf("get analysis history: %w", err)
	}
	return out, nil
}

// WaitForCompletion опрашивает статус, пока анализ не завершится.
// Статус failed прерывает ожидание, исчерпание попыток даёт ErrTimeout.
func (c *AnalysisClient) WaitForCompletion(ctx context.Context, id string) (*model.Analysis, error) {
	attempts := c.pollAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(c.pollInterval))

	var done *model.Analysis
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		a, err := c.Analysis(ctx, id)
		if err != nil {
			return retry.RetryableError(err)
		}

		switch a.Status {
		case model.AnalysisStatusCompleted:
			done = a
			return nil
		case model.AnalysisStatusFailed:
			return ErrAnalysisFailed
		default:
			return retry.RetryableError(fmt.Errorf("analysis %s is %s", id, a.Status))
		}
	})

	switch {
	case err == nil:
		return done, nil
	case errors.Is(err, ErrAnalysisFailed):
		return nil, fmt.Errorf("wait for analysis %s: %w", id, ErrAnalysisFailed)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		return nil, fmt.Errorf("wait for analysis %s: %w", id, ErrTimeout)
	}
}
