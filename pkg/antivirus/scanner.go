// Package antivirus scans uploaded resumes before they are stored.
package antivirus

import (
	"context"
	"errors"
	"net/http"

	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"
)

// ScanResult contains the result of a malware scan
type ScanResult struct {
	Infected    bool   // True if malware was detected
	ThreatName  string // Name of detected threat (empty if clean)
	ScannerName string // Name of scanner that produced this result
	Error       error  // Any error that occurred during scanning
}

// Scanner checks file content for malware. On error the result is
// reported as infected (fail closed).
type Scanner interface {
	Scan(ctx context.Context, filename string, data []byte) ScanResult
	Name() string
}

// Saver is the storage being guarded.
type Saver interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
}

// GuardedStorage scans every object before handing it to the wrapped storage.
type GuardedStorage struct {
	next    Saver
	scanner Scanner
}

func NewGuardedStorage(next Saver, scanner Scanner) *GuardedStorage {
	return &GuardedStorage{next: next, scanner: scanner}
}

func (g *GuardedStorage) Save(ctx context.Context, key, contentType string, data []byte) error {
	result := g.scanner.Scan(ctx, key, data)
	if result.Error != nil {
		logger.Log.Error("Resume scan failed", "scanner", result.ScannerName, "key", key, "error", result.Error)
		return apperror.ServiceUnavailable("Resume could not be scanned, please try again later", result.Error)
	}
	if result.Infected {
		logger.Log.Warn("Resume rejected by antivirus", "scanner", result.ScannerName, "key", key, "threat", result.ThreatName)
		return apperror.New(http.StatusUnprocessableEntity, "Resume rejected: malware detected", errors.New(result.ThreatName))
	}
	return g.next.Save(ctx, key, contentType, data)
}
