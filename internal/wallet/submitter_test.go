package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubmitter_UserRejectionIsNotRetried(t *testing.T) {
	provider := &fakeProvider{handle: func(string, []any) (any, error) {
		return nil, &ProviderError{Code: CodeUserRejected, Message: "User denied transaction signature"}
	}}
	notices := &noticeRecorder{}
	s := NewSubmitter(provider, notices, zap.NewNop(), 3, time.Millisecond)

	_, err := s.Send(context.Background(), Tx{From: "0x1", To: "0x2"})

	require.ErrorIs(t, err, ErrUserRejected)
	assert.Equal(t, []string{"eth_sendTransaction"}, provider.methods())
	assert.Empty(t, notices.texts())
}

func TestSubmitter_RetriesWithExponentialBackoff(t *testing.T) {
	attempts := 0
	provider := &fakeProvider{handle: func(string, []any) (any, error) {
		attempts++
		if attempts < 3 {
			return nil, &ProviderError{Code: -32000, Message: "network busy"}
		}
		return "0xabc", nil
	}}
	notices := &noticeRecorder{}
	s := NewSubmitter(provider, notices, zap.NewNop(), 3, time.Millisecond)

	hash, err := s.Send(context.Background(), Tx{From: "0x1", To: "0x2", Data: "0x65dd152c"})

	require.NoError(t, err)
	assert.Equal(t, "0xabc", hash)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []string{
		"Network busy, retrying in 1ms...",
		"Network busy, retrying in 2ms...",
	}, notices.texts())
}

func TestSubmitter_UndecodableHashIsNotResent(t *testing.T) {
	provider := &fakeProvider{handle: func(string, []any) (any, error) {
		return map[string]string{"hash": "0xabc"}, nil
	}}
	notices := &noticeRecorder{}
	s := NewSubmitter(provider, notices, zap.NewNop(), 3, time.Millisecond)

	hash, err := s.Send(context.Background(), Tx{From: "0x1", To: "0x2", Value: "0x1"})

	require.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Empty(t, hash)
	assert.Equal(t, []string{"eth_sendTransaction"}, provider.methods())
	assert.Empty(t, notices.texts())
}

func TestSubmitter_DefaultDelaysAreTwoAndFourSeconds(t *testing.T) {
	notices := &noticeRecorder{}
	s := NewSubmitter(&fakeProvider{}, notices, zap.NewNop(), 3, 0)
	b := s.backoff(context.Background())

	d1, stop := b.Next()
	require.False(t, stop)
	d2, stop := b.Next()
	require.False(t, stop)
	_, stop = b.Next()

	assert.Equal(t, 2*time.Second, d1)
	assert.Equal(t, 4*time.Second, d2)
	assert.True(t, stop, "no sleep after the final attempt")
	assert.Equal(t, []string{
		"Network busy, retrying in 2s...",
		"Network busy, retrying in 4s...",
	}, notices.texts())
}

func TestSubmitter_ExhaustedWrapsLastError(t *testing.T) {
	lastErr := &ProviderError{Code: -32603, Message: "internal error"}
	attempts := 0
	provider := &fakeProvider{handle: func(string, []any) (any, error) {
		attempts++
		return nil, lastErr
	}}
	s := NewSubmitter(provider, &noticeRecorder{}, zap.NewNop(), 3, time.Millisecond)

	_, err := s.Send(context.Background(), Tx{})

	require.ErrorIs(t, err, ErrSubmissionFailed)
	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, -32603, pe.Code)
	assert.Equal(t, 3, attempts)
}

func TestSubmitter_SingleAttempt(t *testing.T) {
	attempts := 0
	provider := &fakeProvider{handle: func(string, []any) (any, error) {
		attempts++
		return nil, errors.New("boom")
	}}
	notices := &noticeRecorder{}
	s := NewSubmitter(provider, notices, zap.NewNop(), 1, time.Millisecond)

	_, err := s.Send(context.Background(), Tx{})

	require.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, notices.texts())
}

func TestSubmitter_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	provider := &fakeProvider{handle: func(string, []any) (any, error) {
		cancel()
		return nil, errors.New("boom")
	}}
	s := NewSubmitter(provider, &noticeRecorder{}, zap.NewNop(), 3, time.Hour)

	done := make(chan error, 1)
	go func() {
		_, err := s.Send(ctx, Tx{})
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Send did not honour context cancellation")
	}
}
