package crypto

import (
	"encoding/base64"
	"fmt"
)

// ToBase64 encodes bytes to standard base64 with padding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 with or without padding.
// Values read back from chain storage sometimes have their padding stripped.
func FromBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.RawStdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
}
