package upload

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ResumeValidationResult contains the result of resume validation
type ResumeValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Normalized file extension
	DetectedMIME string // MIME type detected from content
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed resume types
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},         // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                 // ZIP (PK..)
	".rtf":  {{0x7B, 0x5C, 0x72, 0x74, 0x66}},                           // {\rtf
	".txt":  {},                                                         // no signature, MIME only
}

// MIME types accepted per extension. application/octet-stream is never accepted.
var allowedMIME = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".rtf":  {"text/rtf", "application/rtf"},
	".txt":  {"text/plain"},
}

// ErrEmptyFile is returned for zero-length uploads.
var ErrEmptyFile = errors.New("resume file is empty")

// ValidateResume checks extension whitelist, magic bytes and sniffed MIME type.
func ValidateResume(filename string, data []byte) ResumeValidationResult {
	ext := strings.ToLower(filepath.Ext(filename))
	result := ResumeValidationResult{Extension: ext}

	if len(data) == 0 {
		result.Error = ErrEmptyFile.Error()
		return result
	}
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	signatures, ok := magicBytes[ext]
	if !ok {
		result.Error = fmt.Sprintf("file extension not allowed: %s (allowed: %s)", ext, strings.Join(AllowedExtensions(), ", "))
		return result
	}

	if len(signatures) > 0 && !hasSignature(data, signatures) {
		result.Error = "file content does not match extension"
		return result
	}

	detected := mimetype.Detect(data)
	result.DetectedMIME = detected.String()
	if !mimeAllowed(ext, detected) {
		result.Error = "MIME type not allowed: " + result.DetectedMIME
		return result
	}

	result.Valid = true
	return result
}

// ContentType returns the canonical content type stored alongside the file.
func (r ResumeValidationResult) ContentType() string {
	if r.DetectedMIME == "" {
		return "application/octet-stream"
	}
	// drop parameters such as "; charset=utf-8"
	if i := strings.Index(r.DetectedMIME, ";"); i >= 0 {
		return strings.TrimSpace(r.DetectedMIME[:i])
	}
	return r.DetectedMIME
}

// AllowedExtensions lists accepted resume extensions in a stable order.
func AllowedExtensions() []string {
	return []string{".pdf", ".doc", ".docx", ".rtf", ".txt"}
}

func hasSignature(data []byte, signatures [][]byte) bool {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

func mimeAllowed(ext string, detected *mimetype.MIME) bool {
	for _, allowed := range allowedMIME[ext] {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}
