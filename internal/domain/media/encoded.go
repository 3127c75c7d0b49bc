package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// EncodedImage is a self-contained raster image as a data URI:
// "data:<mime>;base64,<payload>". Fields in the site document hold either
// one of these or an external URL; only data URIs are ever produced or
// reprocessed by this package.
type EncodedImage string

var ErrNotDataURI = errors.New("media: not a base64 data URI")

// Encode wraps raw bytes into a data URI with the given MIME type.
func Encode(mime string, data []byte) EncodedImage {
	return EncodedImage(fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)))
}

// IsDataURI reports whether the value is an inline base64 image rather
// than an external URL.
func (e EncodedImage) IsDataURI() bool {
	return strings.HasPrefix(string(e), "data:") && strings.Contains(string(e), ";base64,")
}

// Decode splits the data URI into its MIME type and raw bytes.
func (e EncodedImage) Decode() (string, []byte, error) {
	s := string(e)
	if !strings.HasPrefix(s, "data:") {
		return "", nil, ErrNotDataURI
	}
	rest := s[len("data:"):]
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", nil, ErrNotDataURI
	}
	mime := rest[:idx]
	payload := rest[idx+len(";base64,"):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("media: decode base64 payload: %w", err)
	}
	return mime, data, nil
}
