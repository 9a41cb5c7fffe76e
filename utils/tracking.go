package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateTrackingID returns BC-<YYYYMMDD>-<8 uppercase hex chars>. The suffix
// comes from 4 random bytes; uniqueness is not otherwise enforced.
func GenerateTrackingID(now time.Time) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	suffix := strings.ToUpper(hex.EncodeToString(buf))
	return fmt.Sprintf("%s-%s-%s", TrackingIDPrefix, now.Format("20060102"), suffix), nil
}
