package payment

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var trackingPattern = regexp.MustCompile(`^PRCL-\d{8}-[0-9A-F]{6}$`)

func TestGenerateTrackingCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateTrackingCode()
		assert.Regexp(t, trackingPattern, code)
		assert.Contains(t, code, time.Now().UTC().Format("20060102"))
	}
}

func TestGenerateTrackingCodeUsesUTCDate(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	// 01:30 on Jan 2 in UTC+3 is still Jan 1 in UTC.
	now := time.Date(2024, 1, 2, 1, 30, 0, 0, nairobi)

	code := generateTrackingCode(now, bytes.NewReader([]byte{0xab, 0x01, 0xff}))
	assert.Equal(t, "PRCL-20240101-AB01FF", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateTrackingCodePanicsWithoutRandomness(t *testing.T) {
	assert.Panics(t, func() {
		generateTrackingCode(time.Now(), failingReader{})
	})
}
