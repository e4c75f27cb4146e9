package securevar

// HeaderSize is the size of the envelope header in bytes.
const HeaderSize = 1

const (
	headerPlaintext int8 = 0
	headerEncrypted int8 = 1
)

// Header describes an envelope payload.
type Header struct {
	Encrypted bool
}

// CreateHeader returns a new header declaring whether the payload is encrypted.
func CreateHeader(encrypted bool) []byte {
	flag := headerPlaintext
	if encrypted {
		flag = headerEncrypted
	}
	return []byte{byte(flag)}
}

// ParseHeader reads the header at offset in buf.
// Only the literal flag value 1 marks the payload as encrypted; every other
// value, including 0xff read as -1, is plaintext.
func ParseHeader(buf []byte, offset int) (Header, error) {
	if offset < 0 || len(buf)-offset < HeaderSize {
		return Header{}, newFormatError(len(buf), offset)
	}
	return Header{Encrypted: int8(buf[offset]) == headerEncrypted}, nil
}
