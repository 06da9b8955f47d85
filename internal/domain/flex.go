package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ImageList accepts a single URL string, a list of strings, or a list of
// image objects ({image_url|image|file_url|file|url}) and keeps only URLs.
type ImageList []string

func (l *ImageList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s != "" {
			*l = ImageList{s}
		} else {
			*l = nil
		}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(ImageList, 0, len(raw))
	for _, it := range raw {
		var s string
		if err := json.Unmarshal(it, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(it, &obj); err != nil {
			continue
		}
		for _, k := range []string{"image_url", "image", "file_url", "file", "url"} {
			if u, ok := obj[k].(string); ok && strings.TrimSpace(u) != "" {
				out = append(out, strings.TrimSpace(u))
				break
			}
		}
	}
	*l = out
	return nil
}

// FlexString decodes either a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }
