package static

import "strings"

const defaultContentType = "application/octet-stream"

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".txt":  "text/plain",
	".pdf":  "application/pdf",
}

func contentTypeFor(ext string) string {
	if ct, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return defaultContentType
}

// cacheable reports whether the response may be reused for a day.
// Markup stays uncached so deploys show up immediately.
func cacheable(contentType string) bool {
	return strings.Contains(contentType, "image") ||
		strings.Contains(contentType, "css") ||
		strings.Contains(contentType, "javascript")
}
