package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FileFingerprint returns the SHA256 checksum and size of a local file.
func FileFingerprint(filePath string) (string, int64, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	sha256Hash := sha256.New()

	size, err := io.Copy(sha256Hash, file)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to calculate checksum")
	}

	return fmt.Sprintf("%x", sha256Hash.Sum(nil)), size, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats an import duration (e.g. "850ms", "45s", "5m10s", "1h30m").
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
