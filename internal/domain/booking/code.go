package booking

import (
	"errors"
	"math"
	"strings"
)

// Código de confirmação mostrado ao cliente no lugar do id cru.
// Função determinística e reversível do id: "AG" + id em base 32
// (alfabeto Crockford, sem I/L/O/U para evitar leitura ambígua).
// Seis dígitos com zeros à esquerda; ids acima de 32^6 ganham dígitos
// extras em vez de colidir com os primeiros.

const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
const codePrefix = "AG"
const codeMinLength = 6
const codeMaxLength = 13 // 13 dígitos base 32 cobrem qualquer uint64

var ErrInvalidCode = errors.New("invalid confirmation code")

func Code(id uint) string {
	if id == 0 {
		return ""
	}

	var buf [codeMaxLength]byte
	i := len(buf)
	for v := uint64(id); v > 0; v /= 32 {
		i--
		buf[i] = codeAlphabet[v%32]
	}
	for len(buf)-i < codeMinLength {
		i--
		buf[i] = '0'
	}
	return codePrefix + string(buf[i:])
}

func ParseCode(code string) (uint, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	if !strings.HasPrefix(code, codePrefix) {
		return 0, ErrInvalidCode
	}
	body := code[len(codePrefix):]
	if len(body) < codeMinLength || len(body) > codeMaxLength {
		return 0, ErrInvalidCode
	}
	// acima do comprimento mínimo a forma canônica não tem zero à esquerda
	if len(body) > codeMinLength && body[0] == '0' {
		return 0, ErrInvalidCode
	}

	var id uint64
	for i := 0; i < len(body); i++ {
		idx := strings.IndexByte(codeAlphabet, body[i])
		if idx < 0 {
			return 0, ErrInvalidCode
		}
		if id > (math.MaxUint64-uint64(idx))/32 {
			return 0, ErrInvalidCode
		}
		id = id*32 + uint64(idx)
	}

	if id == 0 || uint64(uint(id)) != id {
		return 0, ErrInvalidCode
	}
	return uint(id), nil
}
