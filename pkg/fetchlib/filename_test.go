package fetchlib

import "testing"

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"simple path", "http://example.com/file.zip", "file.zip"},
		{"nested path", "http://example.com/a/b/report.pdf", "report.pdf"},
		{"trailing slash", "http://example.com/dir/", "download"},
		{"no path", "http://example.com", "download"},
		{"query ignored", "http://example.com/data.csv?session=1", "data.csv"},
		{"encoded characters decoded", "http://example.com/my%20file.txt", "my file.txt"},
		{"unparseable url", "http://exa mple/\x00", "download"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilenameFromURL(tt.url); got != tt.want {
				t.Errorf("FilenameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean name untouched", "report.pdf", "report.pdf"},
		{"windows invalid chars", `a<b>c:d"e|f?g*.txt`, "a_b_c_d_e_f_g_.txt"},
		{"path separators", "a/b\\c.txt", "a_b_c.txt"},
		{"control characters stripped", "fi\x01le\x1f.txt", "file.txt"},
		{"reserved name gets prefix", "CON.txt", "_CON.txt"},
		{"reserved name case-insensitive", "aux", "_aux"},
		{"reserved only as full base", "console.txt", "console.txt"},
		{"trailing dots trimmed", "name...", "name"},
		{"surrounding spaces trimmed", "  name.txt  ", "name.txt"},
		{"empty falls back", "", "download"},
		{"only invalid content falls back", " . ", "download"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
