package wallet

import "errors"

var (
	ErrUserRejected       = errors.New("transaction rejected by user")
	ErrChainSwitchFailed  = errors.New("failed to switch network")
	ErrSubmissionFailed   = errors.New("transaction failed")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidRequestID   = errors.New("invalid request id")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrNoAccounts         = errors.New("wallet returned no accounts")
	ErrNoProvider         = errors.New("no wallet provider reachable")
)

// Коды ошибок провайдера (EIP-1193 / EIP-3085)
const (
	CodeUserRejected = 4001
	CodeUnknownChain = 4902
)

// ProviderError - ошибка провайдера с числовым кодом
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) ErrorCode() int {
	return e.Code
}

// coder совпадает с rpc.Error из go-ethereum
type coder interface {
	ErrorCode() int
}

// ErrorCode достаёт код ошибки провайдера, если он есть
func ErrorCode(err error) (int, bool) {
	var c coder
	if errors.As(err, &c) {
		return c.ErrorCode(), true
	}
	return 0, false
}

func hasCode(err error, code int) bool {
	c, ok := ErrorCode(err)
	return ok && c == code
}
