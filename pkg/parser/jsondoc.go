package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// User is one validated entry from the "usuarios" array.
type User struct {
	ID         int
	Name       string
	Email      string
	Active     bool
	LastAccess string // optional; empty when absent
}

// Session is one validated entry from the "sesiones" array.
type Session struct {
	UserID          int
	Start           string // optional ISO timestamp; empty when absent
	DurationSeconds *int   // optional
	PagesVisited    *int   // optional
	Actions         []string
}

// JSONData is the parsed payload of a users/sessions document.
type JSONData struct {
	Users    []User
	Sessions []Session
}

// userSchema and sessionSchema gate the structural shape of each record
// before the per-field extraction below runs: gojsonschema checks required
// fields and types and supplies the reason text, and ParseJSON prefixes
// each reason with the record's array name and index.
const userSchemaJSON = `{
  "type": "object",
  "required": ["id", "nombre", "email", "activo"],
  "properties": {
    "id": {"type": "integer"},
    "nombre": {"type": "string"},
    "email": {"type": "string"},
    "activo": {"type": "boolean"},
    "ultimo_acceso": {"type": "string"}
  }
}`

const sessionSchemaJSON = `{
  "type": "object",
  "required": ["usuario_id"],
  "properties": {
    "usuario_id": {"type": "integer"}
  }
}`

var (
	userSchema    = mustCompileSchema(userSchemaJSON)
	sessionSchema = mustCompileSchema(sessionSchemaJSON)
)

func mustCompileSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("parser: invalid embedded json schema: %v", err))
	}
	return schema
}

// ParseJSON implements the contract in spec.md §4.2.
func ParseJSON(content []byte) Result {
	var root interface{}
	if err := json.Unmarshal(content, &root); err != nil {
		return fail(fmt.Sprintf("invalid JSON syntax: %v", err))
	}

	rootMap, isObj := root.(map[string]interface{})
	if !isObj {
		return fail("root must be a JSON object")
	}

	usuariosRaw, isArr := rootMap["usuarios"].([]interface{})
	if !isArr {
		return fail("missing or invalid required array 'usuarios'")
	}
	sesionesRaw, isArr := rootMap["sesiones"].([]interface{})
	if !isArr {
		return fail("missing or invalid required array 'sesiones'")
	}

	var reasons []string

	users := make([]User, 0, len(usuariosRaw))
	for i, rec := range usuariosRaw {
		u, errs := validateUser(rec)
		if len(errs) > 0 {
			reasons = append(reasons, fmt.Sprintf("usuarios[%d]: %s", i, strings.Join(errs, ", ")))
			continue
		}
		users = append(users, u)
	}

	sessions := make([]Session, 0, len(sesionesRaw))
	for i, rec := range sesionesRaw {
		s, errs := validateSession(rec)
		if len(errs) > 0 {
			reasons = append(reasons, fmt.Sprintf("sesiones[%d]: %s", i, strings.Join(errs, ", ")))
			continue
		}
		sessions = append(sessions, s)
	}

	if len(reasons) > 0 {
		return fail(fmt.Sprintf("%d record(s) failed validation: %s", len(reasons), strings.Join(reasons, "; ")))
	}

	return ok(JSONData{Users: users, Sessions: sessions})
}

func validateUser(rec interface{}) (User, []string) {
	result, err := userSchema.Validate(gojsonschema.NewGoLoader(rec))
	if err != nil {
		return User{}, []string{fmt.Sprintf("schema validation error: %v", err)}
	}
	if !result.Valid() {
		return User{}, schemaErrorStrings(result)
	}

	m := rec.(map[string]interface{})
	u := User{
		Name:   m["nombre"].(string),
		Email:  m["email"].(string),
		Active: m["activo"].(bool),
	}
	u.ID = int(m["id"].(float64))
	if la, ok := m["ultimo_acceso"].(string); ok {
		u.LastAccess = la
	}
	return u, nil
}

func validateSession(rec interface{}) (Session, []string) {
	result, err := sessionSchema.Validate(gojsonschema.NewGoLoader(rec))
	if err != nil {
		return Session{}, []string{fmt.Sprintf("schema validation error: %v", err)}
	}
	if !result.Valid() {
		return Session{}, schemaErrorStrings(result)
	}

	m := rec.(map[string]interface{})
	s := Session{
		UserID:  int(m["usuario_id"].(float64)),
		Actions: []string{},
	}
	if v, ok := m["inicio"].(string); ok {
		s.Start = v
	}
	if v, ok := m["duracion_segundos"].(float64); ok {
		n := int(v)
		s.DurationSeconds = &n
	}
	if v, ok := m["paginas_visitadas"].(float64); ok {
		n := int(v)
		s.PagesVisited = &n
	}
	if v, ok := m["acciones"].([]interface{}); ok {
		actions := make([]string, 0, len(v))
		for _, a := range v {
			if str, ok := a.(string); ok {
				actions = append(actions, str)
			}
		}
		s.Actions = actions
	}
	return s, nil
}

func schemaErrorStrings(result *gojsonschema.Result) []string {
	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.Description())
	}
	return errs
}
