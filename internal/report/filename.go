package report

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// Filename returns "<kind>_report_<YYYYMMDD_HHMMSS>.<ext>".
func Filename(kind string, format Format, now time.Time) string {
	ext := string(format)
	if ext == "" {
		ext = string(FormatXLSX)
	}
	return fmt.Sprintf("%s_report_%s.%s", kind, now.Format(timestampLayout), ext)
}

// DownloadURL is the path the download endpoint serves filename under.
func DownloadURL(filename string) string {
	return "/api/download/" + filename
}

// CleanFilename keeps only the last path element of name, so a download
// request can never address anything outside the report store.
func CleanFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := path.Base(name)
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	return base
}

// FormatFromFilename guesses the artifact format from its extension.
func FormatFromFilename(name string) Format {
	if strings.EqualFold(path.Ext(name), ".pdf") {
		return FormatPDF
	}
	return FormatXLSX
}
