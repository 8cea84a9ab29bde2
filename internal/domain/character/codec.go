package character

import (
	"bytes"
	"encoding/json"
	"log"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"dario.cat/mergo"

	dnderr "github.com/KirkDiggler/charsheet/internal/errors"
	"github.com/KirkDiggler/charsheet/internal/uuid"
)

// DocumentVersion is written into every persisted envelope
const DocumentVersion = 2

type envelope struct {
	Version  int             `json:"version"`
	Document json.RawMessage `json:"document"`
}

// DecodeResult describes how a persisted blob was turned back into a document
type DecodeResult struct {
	Document *Document
	// Version of the envelope, 1 for a bare legacy document
	Version int
	// Repaired is true when strict decoding failed and fields were coerced
	Repaired bool
	// Skipped lists top level fields that could not be used at all
	Skipped []string
}

// Marshal writes the versioned envelope
func Marshal(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, dnderr.InvalidArgument("document is required")
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to marshal document")
	}

	return json.Marshal(envelope{Version: DocumentVersion, Document: body})
}

// Unmarshal decodes a persisted blob. Missing and null fields take their
// defaults, stored zero values are kept. A blob that fails strict decoding is
// decoded field by field onto a fresh default document, coercing values of
// the wrong type, and only fields that still cannot be used are dropped. Only
// input that is not a JSON object at all is an error.
func Unmarshal(data []byte, ids uuid.Generator) (*DecodeResult, error) {
	body, version, err := openEnvelope(data)
	if err != nil {
		return nil, err
	}

	result := &DecodeResult{Version: version}

	doc := NewDocument()
	if strictErr := json.Unmarshal(body, doc); strictErr != nil {
		result.Repaired = true
		doc, result.Skipped = decodeLenient(body)
		log.Printf("Repaired character document (skipped fields: %v): %v", result.Skipped, strictErr)
	}

	if err := restoreDefaults(doc, nullFields(body)); err != nil {
		return nil, dnderr.Wrap(err, "failed to apply document defaults")
	}

	doc.Normalize(ids)
	result.Document = doc

	return result, nil
}

func openEnvelope(data []byte) (json.RawMessage, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, 0, dnderr.InvalidArgument("persisted document is not a JSON object")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, 0, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "persisted document is not a JSON object")
	}

	raw, hasDoc := fields["document"]
	rawVersion, hasVersion := fields["version"]
	if !hasDoc || !hasVersion {
		return trimmed, 1, nil
	}

	version := 1
	if err := json.Unmarshal(rawVersion, &version); err != nil {
		version = 1
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return []byte("{}"), version, nil
	}

	return raw, version, nil
}

// nullFields lists the top level fields stored as an explicit null
func nullFields(body []byte) []string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}

	var out []string
	for name, raw := range fields {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// restoreDefaults fills the named top level fields from a default document
// where decoding left them zero. Other fields are not touched.
func restoreDefaults(doc *Document, names []string) error {
	if len(names) == 0 {
		return nil
	}

	defaults := reflect.ValueOf(NewDocument()).Elem()
	patch := &Document{}
	target := reflect.ValueOf(patch).Elem()
	byName := jsonFieldIndex(target.Type())

	for _, name := range names {
		if idx, ok := byName[name]; ok {
			target.Field(idx).Set(defaults.Field(idx))
		}
	}

	return mergo.Merge(doc, patch)
}

// decodeLenient decodes each top level field separately onto a fresh default
// document. Values are first coerced toward the Go shape of the field.
func decodeLenient(body []byte) (*Document, []string) {
	doc := NewDocument()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return doc, []string{"*"}
	}

	target := reflect.ValueOf(doc).Elem()
	byName := jsonFieldIndex(target.Type())

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var skipped []string
	for _, name := range names {
		idx, ok := byName[name]
		if !ok {
			continue
		}
		field := target.Field(idx)

		var generic any
		if err := json.Unmarshal(fields[name], &generic); err != nil {
			skipped = append(skipped, name)
			continue
		}
		if generic == nil {
			continue
		}

		value := coerce(generic, field.Type())
		if value == nil {
			skipped = append(skipped, name)
			continue
		}

		coerced, err := json.Marshal(value)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}

		fresh := reflect.New(field.Type())
		fresh.Elem().Set(field)
		if err := json.Unmarshal(coerced, fresh.Interface()); err != nil {
			skipped = append(skipped, name)
			continue
		}
		field.Set(fresh.Elem())
	}

	return doc, skipped
}

// jsonFieldIndex maps json names to struct field indexes
func jsonFieldIndex(t reflect.Type) map[string]int {
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = i
	}
	return out
}

// coerce reshapes a generic JSON value so it decodes into t. Numbers written
// as strings are parsed, anything unparseable becomes the zero value, and
// values of an unrelated shape are dropped so the default survives.
func coerce(v any, t reflect.Type) any {
	switch t.Kind() {
	case reflect.Pointer:
		if v == nil {
			return nil
		}
		return coerce(v, t.Elem())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := toNumber(v)
		if t.Kind() >= reflect.Uint && n < 0 {
			n = 0
		}
		return math.Trunc(n)

	case reflect.Float32, reflect.Float64:
		return toNumber(v)

	case reflect.Bool:
		switch x := v.(type) {
		case bool:
			return x
		case string:
			b, _ := strconv.ParseBool(strings.TrimSpace(x))
			return b
		case float64:
			return x != 0
		default:
			return false
		}

	case reflect.String:
		switch x := v.(type) {
		case string:
			return x
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(x)
		default:
			return ""
		}

	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return map[string]any{}
		}
		out := make(map[string]any, len(obj))
		for name, idx := range jsonFieldIndex(t) {
			if raw, present := obj[name]; present && raw != nil {
				out[name] = coerce(raw, t.Field(idx).Type)
			}
		}
		return out

	case reflect.Slice, reflect.Array:
		list, ok := v.([]any)
		if !ok {
			if t.Kind() == reflect.Array {
				return []any{}
			}
			return nil
		}
		out := make([]any, len(list))
		for i, elem := range list {
			out[i] = coerce(elem, t.Elem())
		}
		return out

	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		out := make(map[string]any, len(obj))
		for k, elem := range obj {
			if !validMapKey(k, t.Key()) {
				continue
			}
			out[k] = coerce(elem, t.Elem())
		}
		return out

	default:
		return v
	}
}

func validMapKey(k string, t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err := strconv.ParseInt(k, 10, 64)
		return err == nil
	case reflect.String:
		return true
	default:
		return false
	}
}

func toNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}
