package analysis

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize - 10MB
const MaxUploadSize = 10 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".docx": true,
}

type Handler struct {
	store    *Store
	files    *FileStore
	verifier PaymentVerifier
	chain    model.Chain
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandler(store *Store, files *FileStore, verifier PaymentVerifier, chain model.Chain, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		files:    files,
		verifier: verifier,
		chain:    chain,
		logger:   logger,
		now:      time.Now,
	}
}

// Health - GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{Status: "OK", Message: "AI Medical Analysis Backend is running"})
}

// ChainConfig - GET /api/shardeum-config
func (h *Handler) ChainConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.chain)
}

// Pricing - GET /api/pricing
func (h *Handler) Pricing(c *gin.Context) {
	c.JSON(http.StatusOK, model.AnalysisPrices)
}

// Upload - POST /api/upload-report
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+1<<20)

	file, err := c.FormFile("medicalReport")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "File size must be less than 10MB"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "No file uploaded"})
		return
	}

	if file.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "File size must be less than 10MB"})
		return
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Only medical report files are allowed (PDF, JPG, PNG, DOCX)"})
		return
	}

	analysisType := c.DefaultPostForm("analysisType", model.AnalysisBasic)
	price, ok := model.AnalysisPrices[analysisType]
	if !ok {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: fmt.Sprintf("Unknown analysis type: %s", analysisType)})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to read file"})
		return
	}
	defer src.Close()

	storedName, storedPath, err := h.files.Save(src, file.Filename)
	if err != nil {
		h.logger.Error("Failed to store upload", zap.String("file", file.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to upload file"})
		return
	}

	now := h.now()
	analysis := model.Analysis{
		ID:            fmt.Sprintf("analysis_%d_%s", now.UnixMilli(), uuid.NewString()[:9]),
		Filename:      storedName,
		OriginalName:  file.Filename,
		FilePath:      storedPath,
		AnalysisType:  analysisType,
		PatientID:     c.PostForm("patientId"),
		WalletAddress: c.PostForm("walletAddress"),
		Status:        model.AnalysisStatusPendingPayment,
		UploadTime:    now,
		Price:         price,
	}
	h.store.Create(analysis)

	h.logger.Info("📄 Report uploaded",
		zap.String("analysis_id", analysis.ID),
		zap.String("file", file.Filename),
		zap.Int64("size", file.Size),
		zap.String("type", analysisType),
	)

	c.JSON(http.StatusOK, model.UploadResponse{
		Success:      true,
		AnalysisID:   analysis.ID,
		Filename:     file.Filename,
		AnalysisType: analysisType,
		Price:        price,
		Message:      "File uploaded successfully. Please complete payment to proceed with analysis.",
	})
}

// VerifyPayment - POST /api/verify-payment
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req model.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
		return
	}

	analysis, err := h.store.Get(req.AnalysisID)
	if err != nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Analysis request not found"})
		return
	}

	valid, err := h.verifier.Verify(c.Request.Context(), req.TransactionHash, analysis.Price)
	if err != nil {
		h.logger.Error("Payment verification error", zap.String("analysis_id", req.AnalysisID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to verify payment"})
		return
	}
	if !valid {
		_, _ = h.store.Update(req.AnalysisID, func(a *model.Analysis) {
			a.Status = model.AnalysisStatusFailed
		})
		h.logger.Warn("❌ Payment verification failed",
			zap.String("analysis_id", req.AnalysisID),
			zap.String("tx_hash", req.TransactionHash),
		)
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Payment verification failed"})
		return
	}

	paidAt := h.now()
	_, _ = h.store.Update(req.AnalysisID, func(a *model.Analysis) {
		a.Status = model.AnalysisStatusProcessing
		a.TransactionHash = req.TransactionHash
		a.PaymentTime = &paidAt
	})

	result := cannedResult(analysis.AnalysisType)
	completedAt := h.now()
	_, _ = h.store.Update(req.AnalysisID, func(a *model.Analysis) {
		a.Status = model.AnalysisStatusCompleted
		a.Result = result
		a.CompletionTime = &completedAt
	})

	h.logger.Info("✅ Analysis completed",
		zap.String("analysis_id", req.AnalysisID),
		zap.String("tx_hash", req.TransactionHash),
	)

	c.JSON(http.StatusOK, model.VerifyPaymentResponse{
		Success:    true,
		AnalysisID: req.AnalysisID,
		Status:     model.AnalysisStatusCompleted,
		Result:     result,
	})
}

// Get - GET /api/analysis/:analysisId
func (h *Handler) Get(c *gin.Context) {
	analysis, err := h.store.Get(c.Param("analysisId"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Analysis not found"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// History - GET /api/analysis-history/:walletAddress
func (h *Handler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ByWallet(c.Param("walletAddress")))
}
