package recognize

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"
)

func parseForm(t *testing.T, body *bytes.Buffer, contentType string) *multipart.Form {
	t.Helper()
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func TestBuildFormFile(t *testing.T) {
	in := &Input{
		File:     []byte("fakeimg"),
		Filename: "cover.jpg",
		MIME:     "image/jpeg",
		Options:  map[string]string{},
	}
	body, ctype, err := BuildForm(in)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	form := parseForm(t, body, ctype)

	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("file parts = %d, want 1", len(files))
	}
	fh := files[0]
	if fh.Filename != "cover.jpg" {
		t.Fatalf("filename = %q", fh.Filename)
	}
	if got := fh.Header.Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("part content type = %q", got)
	}
	f, err := fh.Open()
	if err != nil {
		t.Fatalf("open part: %v", err)
	}
	defer f.Close()
	data, _ := io.ReadAll(f)
	if string(data) != "fakeimg" {
		t.Fatalf("part body = %q", data)
	}
	if len(form.Value) != 0 {
		t.Fatalf("unexpected value fields: %v", form.Value)
	}
}

func TestBuildFormURL(t *testing.T) {
	in := &Input{URL: "https://example.com/a.png", Options: map[string]string{}}
	body, ctype, err := BuildForm(in)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	form := parseForm(t, body, ctype)
	if got := form.Value["url"]; len(got) != 1 || got[0] != "https://example.com/a.png" {
		t.Fatalf("url field = %v", got)
	}
	if len(form.File) != 0 {
		t.Fatal("no file part expected")
	}
}

func TestBuildFormFileWinsOverURL(t *testing.T) {
	in := &Input{
		File:     []byte("fakeimg"),
		Filename: "a.png",
		MIME:     "image/png",
		URL:      "https://example.com/ignored.png",
		Options:  map[string]string{},
	}
	body, ctype, err := BuildForm(in)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	form := parseForm(t, body, ctype)
	if len(form.File["file"]) != 1 {
		t.Fatal("file part missing")
	}
	if _, ok := form.Value["url"]; ok {
		t.Fatal("url must be dropped when a file is present")
	}
}

func TestBuildFormOptionsExactly(t *testing.T) {
	in := &Input{
		URL: "https://example.com/a.png",
		Options: map[string]string{
			"model":    "pre_stable",
			"is_multi": "", // explicitly sent empty, must survive as empty
		},
	}
	body, ctype, err := BuildForm(in)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	form := parseForm(t, body, ctype)

	if got := form.Value["model"]; len(got) != 1 || got[0] != "pre_stable" {
		t.Fatalf("model = %v", got)
	}
	if got, ok := form.Value["is_multi"]; !ok || got[0] != "" {
		t.Fatalf("is_multi = %v (present=%v)", got, ok)
	}
	for _, k := range []string{"ai_detect", "use_correction"} {
		if _, ok := form.Value[k]; ok {
			t.Fatalf("option %q was not sent but appears in the form", k)
		}
	}
	// url + the two options, nothing else
	if len(form.Value) != 3 {
		t.Fatalf("value fields = %v", form.Value)
	}
}
