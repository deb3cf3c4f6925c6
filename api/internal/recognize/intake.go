package recognize

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/JohnvenTom/animeFace/api/internal/util"
)

// RawUpload is what the HTTP layer pulls out of a multipart request before
// validation. File is nil when no file part was sent; Options must contain
// only keys the client actually sent, empty values included.
type RawUpload struct {
	File    *multipart.FileHeader
	URL     string
	Options map[string]string
}

// Intake validates a raw upload and loads the file bytes into memory.
// maxBytes bounds the accepted file size. The bytes live only for the
// duration of the request; nothing is written to disk.
func Intake(raw RawUpload, maxBytes int64) (*Input, error) {
	if raw.File == nil && strings.TrimSpace(raw.URL) == "" {
		return nil, validationf("no image supplied: provide a file or a url")
	}

	in := &Input{
		URL:     strings.TrimSpace(raw.URL),
		Options: raw.Options,
	}
	if in.Options == nil {
		in.Options = map[string]string{}
	}
	if raw.File == nil {
		return in, nil
	}

	if raw.File.Size > maxBytes {
		return nil, validationf("image too large: limit is %d bytes", maxBytes)
	}

	f, err := raw.File.Open()
	if err != nil {
		return nil, validationf("unreadable file part: %v", err)
	}
	defer f.Close()

	// Size in the part header is client-declared; cap the read as well.
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, validationf("unreadable file part: %v", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, validationf("image too large: limit is %d bytes", maxBytes)
	}

	mime := util.PickMIME(raw.File.Header.Get("Content-Type"), data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, validationf("unsupported content type %q: only images are accepted", mime)
	}

	in.File = data
	in.Filename = raw.File.Filename
	if in.Filename == "" {
		in.Filename = "upload"
	}
	in.MIME = mime
	return in, nil
}
