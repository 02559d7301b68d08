package parser_test

import (
	"testing"

	"github.com/stackvity/dataingest/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSONDoc = `{
  "usuarios": [
    {"id": 1, "nombre": "Ana", "email": "ana@example.com", "activo": true, "ultimo_acceso": "2024-01-15T14:30:00"},
    {"id": 2, "nombre": "Luis", "email": "luis@example.com", "activo": false}
  ],
  "sesiones": [
    {"usuario_id": 1, "inicio": "2024-01-15T14:30:00", "duracion_segundos": 300, "paginas_visitadas": 4, "acciones": ["login", "view"]}
  ]
}`

func TestParseJSON_Valid(t *testing.T) {
	result := parser.ParseJSON([]byte(validJSONDoc))
	require.Equal(t, parser.OutcomeOK, result.Outcome)

	data, ok := result.Data.(parser.JSONData)
	require.True(t, ok)
	require.Len(t, data.Users, 2)
	require.Len(t, data.Sessions, 1)
	assert.True(t, data.Users[0].Active)
	assert.False(t, data.Users[1].Active)
	assert.Equal(t, 300, *data.Sessions[0].DurationSeconds)
}

func TestParseJSON_InvalidSyntax(t *testing.T) {
	result := parser.ParseJSON([]byte("{not json"))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
}

func TestParseJSON_MissingRequiredArray(t *testing.T) {
	result := parser.ParseJSON([]byte(`{"usuarios": []}`))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
	assert.Contains(t, result.Reason, "sesiones")
}

func TestParseJSON_RecordFailsSchema(t *testing.T) {
	doc := `{"usuarios": [{"id": "not-an-int", "nombre": "Ana", "email": "a@b.com", "activo": true}], "sesiones": []}`
	result := parser.ParseJSON([]byte(doc))
	assert.Equal(t, parser.OutcomeError, result.Outcome)
	assert.Contains(t, result.Reason, "usuarios[0]")
}
