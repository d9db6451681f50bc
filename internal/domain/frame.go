package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

type FrameEncoding uint8

const (
	FrameBinary FrameEncoding = iota
	FrameText
)

func (e FrameEncoding) String() string {
	switch e {
	case FrameBinary:
		return "binary"
	case FrameText:
		return "text"
	default:
		return fmt.Sprintf("FrameEncoding(%d)", uint8(e))
	}
}

// Frame is one inbound image message of a scan session. Text frames carry the
// image as base64, optionally behind a data URL prefix.
type Frame struct {
	Encoding FrameEncoding
	Data     []byte
}

func (f Frame) Payload() ([]byte, error) {
	switch f.Encoding {
	case FrameBinary:
		if len(f.Data) == 0 {
			return nil, fmt.Errorf("%w: empty binary frame", ErrDecode)
		}
		return f.Data, nil
	case FrameText:
		return decodeTextFrame(string(f.Data))
	default:
		return nil, fmt.Errorf("%w: unsupported frame encoding %s", ErrDecode, f.Encoding)
	}
}

func decodeTextFrame(raw string) ([]byte, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "data:") {
		if idx := strings.Index(text, ","); idx >= 0 {
			text = text[idx+1:]
		}
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty text frame", ErrDecode)
	}

	encoding := base64.StdEncoding
	if !strings.HasSuffix(text, "=") && len(text)%4 != 0 {
		encoding = base64.RawStdEncoding
	}

	payload, err := encoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: base64 frame: %v", ErrDecode, err)
	}

	return payload, nil
}
