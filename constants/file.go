package constants

import "strings"

// AllowedExtensions holds the file extensions accepted for OCR text ingestion.
var AllowedExtensions = map[string]struct{}{
	"txt": {},
	"ocr": {},
}

// MaxInputBytes caps raw OCR input; anything larger is rejected at the boundary.
const MaxInputBytes = 1 << 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
