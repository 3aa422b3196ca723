package app

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/analysis"
	"github.com/Freeeeeet/health_wallet/internal/client"
	"github.com/Freeeeeet/health_wallet/internal/config"
	"github.com/Freeeeeet/health_wallet/internal/doctor"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func startBackends(t *testing.T) (string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	ah := analysis.NewHandler(analysis.NewStore(), analysis.NewFileStore(t.TempDir()),
		analysis.NewMockVerifier(time.Millisecond, 1, logger), config.DefaultChain(), logger)
	as := httptest.NewServer(analysis.NewRouter(ah, logger))
	t.Cleanup(as.Close)

	ds := httptest.NewServer(doctor.NewRouter(doctor.NewHandler(doctor.NewStore(), logger), logger))
	t.Cleanup(ds.Close)

	return as.URL, ds.URL
}

func TestCheckBackends_Up(t *testing.T) {
	analysisURL, doctorURL := startBackends(t)

	status := CheckBackends(context.Background(),
		client.NewAnalysisClient(analysisURL, nil),
		client.NewDoctorClient(doctorURL, nil),
		config.DefaultChain(),
		zap.NewNop(),
	)

	assert.Equal(t, BackendStatus{AnalysisUp: true, DoctorUp: true}, status)
}

func TestCheckBackends_ChainMismatch(t *testing.T) {
	analysisURL, doctorURL := startBackends(t)

	chain := config.DefaultChain()
	chain.ChainID = "0x1"

	status := CheckBackends(context.Background(),
		client.NewAnalysisClient(analysisURL, nil),
		client.NewDoctorClient(doctorURL, nil),
		chain,
		zap.NewNop(),
	)

	assert.True(t, status.AnalysisUp)
	assert.True(t, status.ChainMismatch)
}

func TestCheckBackends_Down(t *testing.T) {
	// закрытый сервер: соединение отклоняется сразу
	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	status := CheckBackends(context.Background(),
		client.NewAnalysisClient(url, nil),
		client.NewDoctorClient(url, nil),
		config.DefaultChain(),
		zap.NewNop(),
	)

	assert.Equal(t, BackendStatus{}, status)
}
