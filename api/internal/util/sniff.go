package util

import (
	"net/http"
	"strings"
)

// SniffImageMIME detects the image type from magic bytes. Returns "" when the
// payload is not one of the formats the upstream accepts.
func SniffImageMIME(b []byte) string {
	// JPEG: FF D8
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	// GIF87a / GIF89a
	if len(b) >= 6 && b[0] == 'G' && b[1] == 'I' && b[2] == 'F' && b[3] == '8' {
		return "image/gif"
	}
	// WEBP: RIFF....WEBP
	if len(b) >= 12 &&
		b[0] == 'R' && b[1] == 'I' && b[2] == 'F' && b[3] == 'F' &&
		b[8] == 'W' && b[9] == 'E' && b[10] == 'B' && b[11] == 'P' {
		return "image/webp"
	}
	// BMP
	if len(b) >= 2 && b[0] == 'B' && b[1] == 'M' {
		return "image/bmp"
	}
	return ""
}

// PickMIME prefers the declared content type when it is present and specific,
// then magic bytes, then net/http sniffing.
func PickMIME(declared string, data []byte) string {
	d := strings.TrimSpace(declared)
	if d != "" && d != "application/octet-stream" {
		return d
	}
	if m := SniffImageMIME(data); m != "" {
		return m
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return d
}
