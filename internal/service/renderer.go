package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-env-server/models"
)

const prettyIndent = "  "

// Render serializes m according to opts.
//
// The JSON object keeps the key order of m and holds every value as a JSON
// string. In JSON mode the object is the whole payload; otherwise it is
// wrapped as "const <name> = <json>;" or "window.<name> = <json>;".
// Output is byte-identical for identical inputs.
func Render(m *models.ConfigMap, opts models.RenderOptions) (models.Payload, error) {
	body, err := renderJSON(m, opts.Compress)
	if err != nil {
		return models.Payload{}, err
	}

	if opts.AsJSON {
		return models.Payload{Body: body, ContentType: models.ContentTypeJSON}, nil
	}

	return models.Payload{
		Body:        renderScript(body, opts.VariableName, opts.UseWindowBinding),
		ContentType: models.ContentTypeJavaScript,
	}, nil
}

func renderJSON(m *models.ConfigMap, compress bool) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, entry := range m.Entries() {
		value, ok := entry.Value.String()
		if !ok {
			return nil, &MissingValueError{Key: entry.Key}
		}

		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, entry.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	if compress {
		return buf.Bytes(), nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", prettyIndent); err != nil {
		return nil, fmt.Errorf("error indenting config json: %w", err)
	}
	return pretty.Bytes(), nil
}

// writeJSONString appends s as a JSON string literal. HTML characters are
// left as is so that values such as URLs with query strings read naturally.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error encoding config string: %w", err)
	}

	buf.Write(bytes.TrimSuffix(encoded.Bytes(), []byte("\n")))
	return nil
}

func renderScript(body []byte, variable string, window bool) []byte {
	if window {
		return fmt.Appendf(nil, "window.%s = %s;", variable, body)
	}
	return fmt.Appendf(nil, "const %s = %s;", variable, body)
}
