package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAnalysisClient_Upload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload-report", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("medicalReport")
		require.NoError(t, err)
		content, _ := io.ReadAll(file)

		assert.Equal(t, "blood_test.pdf", header.Filename)
		assert.Equal(t, "%PDF-1.4", string(content))
		assert.Equal(t, "detailed", r.FormValue("analysisType"))
		assert.Equal(t, "0xabc", r.FormValue("walletAddress"))

		writeJSON(w, http.StatusOK, model.UploadResponse{Success: true, AnalysisID: "analysis_1", Price: "0.25"})
	}))
	defer ts.Close()

	c := NewAnalysisClient(ts.URL, nil)
	resp, err := c.Upload(context.Background(), UploadRequest{
		FileName:      "blood_test.pdf",
		Content:       strings.NewReader("%PDF-1.4"),
		AnalysisType:  model.AnalysisDetailed,
		PatientID:     "patient_1",
		WalletAddress: "0xabc",
	})

	require.NoError(t, err)
	assert.Equal(t, "analysis_1", resp.AnalysisID)
	assert.Equal(t, "0.25", resp.Price)
}

func TestAnalysisClient_ErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Analysis not found"})
	}))
	defer ts.Close()

	_, err := NewAnalysisClient(ts.URL, nil).Analysis(context.Background(), "missing")

	require.ErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Analysis not found", apiErr.Message)
}

func TestAnalysisClient_WaitForCompletion(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := model.AnalysisStatusProcessing
		if calls.Add(1) >= 3 {
			status = model.AnalysisStatusCompleted
		}
		writeJSON(w, http.StatusOK, model.Analysis{ID: "a1", Status: status})
	}))
	defer ts.Close()

	c := NewAnalysisClient(ts.URL, nil).WithPolling(time.Millisecond, 30)
	a, err := c.WaitForCompletion(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, model.AnalysisStatusCompleted, a.Status)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAnalysisClient_WaitForCompletionFailed(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, model.Analysis{ID: "a1", Status: model.AnalysisStatusFailed})
	}))
	defer ts.Close()

	_, err := NewAnalysisClient(ts.URL, nil).WithPolling(time.Millisecond, 30).WaitForCompletion(context.Background(), "a1")

	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAnalysisClient_WaitForCompletionTimeout(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, model.Analysis{ID: "a1", Status: model.AnalysisStatusProcessing})
	}))
	defer ts.Close()

	_, err := NewAnalysisClient(ts.URL, nil).WithPolling(time.Millisecond, 5).WaitForCompletion(context.Background(), "a1")

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(5), calls.Load())
}

func TestAnalysisClient_History(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis-history/0xabc", r.URL.Path)
		writeJSON(w, http.StatusOK, []model.Analysis{{ID: "a2"}, {ID: "a1"}})
	}))
	defer ts.Close()

	history, err := NewAnalysisClient(ts.URL, nil).History(context.Background(), "0xabc")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "a2", history[0].ID)
}
