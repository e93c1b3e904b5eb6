package payment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

const trackingPrefix = "PRCL"

// GenerateTrackingCode returns a parcel-style code PRCL-YYYYMMDD-XXXXXX for the current UTC date.
// Codes are not checked for uniqueness against stored payments.
func GenerateTrackingCode() string {
	return generateTrackingCode(time.Now(), rand.Reader)
}

func generateTrackingCode(now time.Time, random io.Reader) string {
	buf := make([]byte, 3)
	if _, err := io.ReadFull(random, buf); err != nil {
		panic(fmt.Sprintf("tracking code: random source failed: %v", err))
	}
	return fmt.Sprintf("%s-%s-%s", trackingPrefix, now.UTC().Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}
