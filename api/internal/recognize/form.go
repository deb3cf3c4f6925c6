package recognize

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// BuildForm turns a validated Input into the upstream multipart body.
// A file wins over a url when both are present. Options are copied verbatim
// in OptionKeys order; absent options are omitted entirely so the upstream
// can tell absence apart from an empty value.
func BuildForm(in *Input) (body *bytes.Buffer, contentType string, err error) {
	body = &bytes.Buffer{}
	w := multipart.NewWriter(body)

	switch {
	case in.File != nil:
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(in.Filename)))
		h.Set("Content-Type", in.MIME)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(in.File); err != nil {
			return nil, "", err
		}
	case in.URL != "":
		if err := w.WriteField("url", in.URL); err != nil {
			return nil, "", err
		}
	}

	for _, k := range OptionKeys {
		if v, ok := in.Options[k]; ok {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
