package telegram

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Candidates shown per detected face.
const maxCandidates = 3

// FormatMatches renders the upstream recognition body as a chat reply.
// Expected shape: {"data": [{"character": [{"character": name, "work": title}, …]}, …]};
// the legacy field names ("char", "name", "cartoonname") are accepted too.
func FormatMatches(body []byte) string {
	data := gjson.GetBytes(body, "data")
	if !data.IsArray() || len(data.Array()) == 0 {
		return "No characters recognized on this picture."
	}

	var b strings.Builder
	subjects := data.Array()
	for i, subj := range subjects {
		cands := subj.Get("character")
		if !cands.IsArray() {
			cands = subj.Get("char")
		}
		if !cands.IsArray() || len(cands.Array()) == 0 {
			continue
		}
		if len(subjects) > 1 {
			fmt.Fprintf(&b, "Face %d:\n", i+1)
		}
		for j, c := range cands.Array() {
			if j >= maxCandidates {
				break
			}
			name := firstStr(c, "character", "name")
			work := firstStr(c, "work", "cartoonname")
			switch {
			case name == "":
				continue
			case work == "":
				fmt.Fprintf(&b, "%d. %s\n", j+1, name)
			default:
				fmt.Fprintf(&b, "%d. %s (%s)\n", j+1, name, work)
			}
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "No characters recognized on this picture."
	}
	return out
}

func firstStr(v gjson.Result, keys ...string) string {
	for _, k := range keys {
		if s := v.Get(k); s.Type == gjson.String && s.Str != "" {
			return s.Str
		}
	}
	return ""
}
