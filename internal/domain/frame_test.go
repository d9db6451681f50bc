package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramePayload(t *testing.T) {
	t.Parallel()

	raw := []byte("\x89PNG fake image bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	testCases := []struct {
		name    string
		frame   Frame
		want    []byte
		wantErr bool
	}{
		{name: "binary", frame: Frame{Encoding: FrameBinary, Data: raw}, want: raw},
		{name: "base64 text", frame: Frame{Encoding: FrameText, Data: []byte(encoded)}, want: raw},
		{name: "unpadded base64 text", frame: Frame{Encoding: FrameText, Data: []byte(base64.RawStdEncoding.EncodeToString(raw))}, want: raw},
		{name: "data url", frame: Frame{Encoding: FrameText, Data: []byte("data:image/png;base64," + encoded)}, want: raw},
		{name: "surrounding whitespace", frame: Frame{Encoding: FrameText, Data: []byte("  " + encoded + "\n")}, want: raw},
		{name: "empty binary", frame: Frame{Encoding: FrameBinary}, wantErr: true},
		{name: "empty text", frame: Frame{Encoding: FrameText, Data: []byte("   ")}, wantErr: true},
		{name: "invalid base64", frame: Frame{Encoding: FrameText, Data: []byte("not base64!!")}, wantErr: true},
		{name: "unknown encoding", frame: Frame{Encoding: FrameEncoding(9), Data: raw}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.frame.Payload()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrDecode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
