package content

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a page from r. Unknown keys are rejected so a misspelt
// field never silently drops content.
func DecodeYAML(r io.Reader) (Page, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Page
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Page{}, &Violation{Code: CodeContentDecode, Message: "content file is empty"}
		}
		return Page{}, &Violation{Code: CodeContentDecode, Message: "decode yaml: " + err.Error()}
	}
	return p, nil
}

// EncodeYAML writes p to w.
func EncodeYAML(w io.Writer, p Page) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
