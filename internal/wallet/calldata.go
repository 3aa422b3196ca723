package wallet

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// grantAccessSelector - первые 4 байта keccak256 сигнатуры grantAccess
var grantAccessSelector = []byte{0x65, 0xdd, 0x15, 0x2c}

// uint256Mod = 2^256
var uint256Mod = new(big.Int).Lsh(big.NewInt(1), 256)

// ExtractRequestID оставляет только цифры из id заявки и приводит их к uint256.
// Пустой или нулевой результат заменяется на текущее время в миллисекундах.
func ExtractRequestID(id string, now time.Time) *big.Int {
	var digits strings.Builder
	for _, r := range id {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n, ok := new(big.Int).SetString(digits.String(), 10)
	if ok {
		n.Mod(n, uint256Mod)
	}
	if !ok || n.Sign() == 0 {
		return big.NewInt(now.UnixMilli())
	}
	return n
}

// ParseAddress принимает ровно 40 hex-символов с необязательным префиксом 0x
func ParseAddress(s string) (common.Address, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(hex) != 2*common.AddressLength {
		return common.Address{}, ErrInvalidAddress
	}

	raw, err := hexutil.Decode("0x" + hex)
	if err != nil {
		return common.Address{}, ErrInvalidAddress
	}
	return common.BytesToAddress(raw), nil
}

// AddressOrZero - как ParseAddress, но вместо ошибки отдаёт нулевой адрес
func AddressOrZero(s string) common.Address {
	addr, err := ParseAddress(s)
	if err != nil {
		return common.Address{}
	}
	return addr
}

// EncodeGrantAccess кодирует вызов grantAccess(uint256,address)
func EncodeGrantAccess(id *big.Int, addr common.Address) []byte {
	data := make([]byte, 0, len(grantAccessSelector)+64)
	data = append(data, grantAccessSelector...)

	idWord := make([]byte, 32)
	if id != nil && id.Sign() > 0 {
		// uint256: старшие биты сверх 256 отбрасываются
		idWord = common.LeftPadBytes(truncate256(id), 32)
	}
	data = append(data, idWord...)
	data = append(data, common.LeftPadBytes(addr.Bytes(), 32)...)
	return data
}

// EncodeGrantAccessHex - то же в виде 0x-строки для поля data
func EncodeGrantAccessHex(id *big.Int, addr common.Address) string {
	return hexutil.Encode(EncodeGrantAccess(id, addr))
}

func truncate256(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	return b
}
