package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Sentinel errors for input file parsing.
var (
	// ErrInputFileNotFound is returned when the input file does not exist.
	ErrInputFileNotFound = errors.New("input file not found")
	// ErrInputFilePermission is returned when the input file cannot be read due to permissions.
	ErrInputFilePermission = errors.New("permission denied reading input file")
	// ErrInputFileEmpty is returned when the input file contains no valid URLs.
	ErrInputFileEmpty = errors.New("input file contains no valid urls")
)

// InputFileError wraps input file errors with the offending path.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Path)
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}

// SkippedLine is an input file line that did not yield a URL.
type SkippedLine struct {
	// LineNumber is the 1-indexed line number in the input file.
	LineNumber int
	// Content is the trimmed content of the skipped line.
	Content string
	// Reason explains why the line was skipped.
	Reason string
}

// ParseResult holds the outcome of parsing a URL list file.
type ParseResult struct {
	// URLs contains the parsed urls in file order.
	URLs []string
	// Skipped contains non-comment lines rejected during parsing.
	Skipped []SkippedLine
	// TotalLines is the total number of lines in the file.
	TotalLines int
}

// ParseInputFile reads a newline-delimited URL list. Blank lines and
// lines starting with # are ignored; lines that are not absolute
// http(s) urls are collected in Skipped with a reason.
//
// Errors returned:
//   - ErrInputFileNotFound: file does not exist
//   - ErrInputFilePermission: cannot read file due to permissions
//   - ErrInputFileEmpty: file contains no valid urls
func ParseInputFile(filePath string) (*ParseResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, wrapInputFileError(filePath, err)
	}

	lines := strings.Split(string(data), "\n")
	result := &ParseResult{
		TotalLines: len(lines),
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if reason := validateURL(trimmed); reason != "" {
			result.Skipped = append(result.Skipped, SkippedLine{
				LineNumber: i + 1,
				Content:    trimmed,
				Reason:     reason,
			})
			continue
		}
		result.URLs = append(result.URLs, trimmed)
	}

	if len(result.URLs) == 0 {
		return nil, &InputFileError{Path: filePath, Err: ErrInputFileEmpty}
	}
	return result, nil
}

// validateURL returns a non-empty reason when raw is not an absolute
// http(s) url.
func validateURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "not a valid url"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "missing host"
	}
	return ""
}

func wrapInputFileError(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return &InputFileError{Path: path, Err: ErrInputFileNotFound}
	case os.IsPermission(err):
		return &InputFileError{Path: path, Err: ErrInputFilePermission}
	default:
		return &InputFileError{Path: path, Err: err}
	}
}
