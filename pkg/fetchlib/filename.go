package fetchlib

import (
	"net/url"
	"strings"
)

// FilenameFromURL derives a save name from the last path segment of the
// URL, sanitized for cross-platform filesystems. Returns "download" when
// the URL carries no usable path segment.
func FilenameFromURL(rawURL string) string {
	var name string
	if u, err := url.Parse(rawURL); err == nil {
		pa := strings.Split(u.Path, "/")
		name = pa[len(pa)-1]
	}
	return SanitizeFilename(name)
}

// SanitizeFilename removes or replaces characters invalid on
// Windows/Unix filesystems. It preserves the file extension and handles
// URL-encoded characters.
func SanitizeFilename(name string) string {
	// URL-decode first (handles %3F for ?, etc.)
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	// Invalid chars on Windows: < > : " / \ | ? *
	invalidChars := []string{"<", ">", ":", "\"", "/", "\\", "|", "?", "*"}
	for _, char := range invalidChars {
		name = strings.ReplaceAll(name, char, "_")
	}

	// Remove control characters (0x00-0x1F)
	var result strings.Builder
	for _, r := range name {
		if r >= 32 {
			result.WriteRune(r)
		}
	}
	name = result.String()

	// Handle Windows reserved names (case-insensitive)
	baseName, ext := name, ""
	if idx := strings.LastIndex(name, "."); idx > 0 {
		baseName, ext = name[:idx], name[idx:]
	}
	reserved := []string{
		"CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
	}
	for _, r := range reserved {
		if strings.EqualFold(baseName, r) {
			baseName = "_" + baseName
			break
		}
	}
	name = baseName + ext

	// Trim leading/trailing spaces and dots (Windows restriction)
	name = strings.Trim(name, " .")

	if name == "" {
		name = "download"
	}
	return name
}
