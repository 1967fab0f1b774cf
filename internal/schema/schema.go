// Package schema holds the declarative mapping between backend wire field
// names and client field names.
//
// The mapping is derived from struct tags on the request and entity models:
// the `json` tag is the snake_case wire name, the Go field name is the
// PascalCase wire name used by the legacy backend, and the optional `client`
// tag (or the lowerCamel form of the Go field name) is the name forms and
// error consumers use. Because the same tags drive request encoding, the
// error normalizer's field translation and the request bodies cannot drift
// apart.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pet-tracker/models"
)

// Style selects the wire naming convention of request bodies.
type Style string

const (
	// Snake encodes fields with their snake_case json tag names.
	Snake Style = "snake"

	// Pascal encodes fields with their PascalCase Go field names.
	Pascal Style = "pascal"
)

// ParseStyle converts a configuration value into a [Style]. Empty input
// yields [Snake].
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", Snake:
		return Snake, nil
	case Pascal:
		return Pascal, nil
	default:
		return "", fmt.Errorf("unknown wire style %q", s)
	}
}

// Table maps wire field names to client field names and snake_case wire
// names to their PascalCase form.
type Table struct {
	toClient map[string]string
	toPascal map[string]string
}

// NewTable builds a table from the struct types of the given values. Nested
// struct fields are registered as well. The first registration of a wire name
// wins.
func NewTable(types ...any) *Table {
	t := &Table{
		toClient: make(map[string]string),
		toPascal: make(map[string]string),
	}
	for _, v := range types {
		t.register(reflect.TypeOf(v), make(map[reflect.Type]bool))
	}
	return t
}

// Default returns the table for every request and entity model the client
// sends or receives.
func Default() *Table {
	return NewTable(
		models.RegisterRequest{},
		models.LoginRequest{},
		models.UserProfile{},
		models.EntryInput{},
		models.MedicalDetails{},
		models.DietDetails{},
		models.HabitDetails{},
		models.CommandDetails{},
		models.InviteInput{},
		models.ShareInput{},
	).
		Alias("user_id", "userId").
		Alias("pet_id", "petId").
		Alias("entry_id", "entryId")
}

// Alias registers an explicit wire→client mapping for a field that has no
// model counterpart.
func (t *Table) Alias(wire, client string) *Table {
	if _, ok := t.toClient[wire]; !ok {
		t.toClient[wire] = client
	}
	return t
}

func (t *Table) register(typ reflect.Type, seen map[reflect.Type]bool) {
	for typ != nil && (typ.Kind() == reflect.Pointer || typ.Kind() == reflect.Slice) {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct || seen[typ] {
		return
	}
	seen[typ] = true

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}

		wire := wireName(f)
		if wire == "-" {
			continue
		}

		client := f.Tag.Get("client")
		if client == "" {
			client = lowerCamel(f.Name)
		}

		if _, ok := t.toClient[wire]; !ok {
			t.toClient[wire] = client
		}
		if _, ok := t.toClient[f.Name]; !ok {
			t.toClient[f.Name] = client
		}
		if _, ok := t.toPascal[wire]; !ok {
			t.toPascal[wire] = f.Name
		}

		t.register(f.Type, seen)
	}
}

func wireName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// ClientField translates a wire field name into its client name. Dotted
// paths (e.g. "details.follow_up_date") are translated segment by segment.
// Unmapped names pass through unchanged.
func (t *Table) ClientField(wire string) string {
	if wire == "" {
		return ""
	}
	if client, ok := t.toClient[wire]; ok {
		return client
	}
	if !strings.Contains(wire, ".") {
		return wire
	}

	parts := strings.Split(wire, ".")
	for i, p := range parts {
		if client, ok := t.toClient[p]; ok {
			parts[i] = client
		}
	}
	return strings.Join(parts, ".")
}

// Encode converts v into a request body in the given style. For [Snake] the
// value is returned as is because json tags already carry snake_case names;
// for [Pascal] the JSON object keys are renamed recursively.
func (t *Table) Encode(v any, style Style) (any, error) {
	if style == "" || style == Snake {
		return v, nil
	}
	if style != Pascal {
		return nil, fmt.Errorf("unknown wire style %q", style)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	var generic any
	if err = json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}

	return t.renamePascal(generic), nil
}

func (t *Table) renamePascal(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			name := k
			if pascal, ok := t.toPascal[k]; ok {
				name = pascal
			}
			out[name] = t.renamePascal(inner)
		}
		return out
	case []any:
		for i := range val {
			val[i] = t.renamePascal(val[i])
		}
		return val
	default:
		return v
	}
}

// lowerCamel lowercases the leading upper-case run of a Go identifier,
// keeping the last capital when it starts the next word: "FirstName" →
// "firstName", "ID" → "id", "URLPath" → "urlPath".
func lowerCamel(name string) string {
	runes := []rune(name)
	for i := 0; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			break
		}
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
