package form

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Signup(t *testing.T) {
	def, err := Builtin("signup")
	require.NoError(t, err)

	assert.Equal(t, "signup", def.Name)
	require.Len(t, def.Fields, 6)
	assert.True(t, def.Fields[2].Secret)
	assert.Nil(t, def.Fields[0].Required)
	require.NotNil(t, def.Fields[3].Required)
	assert.False(t, *def.Fields[3].Required)
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("checkout")
	assert.ErrorIs(t, err, ErrUnknownDefinition)
}

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		fields  int
	}{
		{
			name:   "json",
			data:   `{"name":"contact","fields":[{"name":"email","pattern":"email"},{"name":"note","required":false}]}`,
			fields: 2,
		},
		{
			name:   "yaml",
			data:   "name: contact\nfields:\n  - name: email\n    pattern: email\n",
			fields: 1,
		},
		{
			name:    "blank document",
			data:    "  \n",
			wantErr: ErrEmptyDefinition,
		},
		{
			name:    "missing name",
			data:    `{"fields":[{"name":"email"}]}`,
			wantErr: ErrEmptyFormName,
		},
		{
			name:    "no fields",
			data:    "name: contact\n",
			wantErr: ErrNoFields,
		},
		{
			name:    "unnamed field",
			data:    "name: contact\nfields:\n  - label: Email\n",
			wantErr: ErrEmptyFieldName,
		},
		{
			name:    "duplicate field",
			data:    "name: contact\nfields:\n  - name: email\n  - name: ' email '\n",
			wantErr: ErrDuplicateField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition([]byte(tt.data), "test")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "contact", def.Name)
			assert.Len(t, def.Fields, tt.fields)
		})
	}
}

func TestParseDefinition_ExplicitEmptyMessageIsKept(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "yaml", data: "name: contact\nfields:\n  - name: note\n    success_message: \"\"\n"},
		{name: "json", data: `{"name":"contact","fields":[{"name":"note","success_message":""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition([]byte(tt.data), "test")
			require.NoError(t, err)

			field := def.Fields[0]
			require.NotNil(t, field.SuccessMessage)
			assert.Equal(t, "", *field.SuccessMessage)
			assert.Nil(t, field.ErrorMessage)
		})
	}
}

func TestParseDefinition_Garbage(t *testing.T) {
	_, err := ParseDefinition([]byte("name: [unterminated"), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoadDefinition(t *testing.T) {
	t.Run("empty path loads builtin", func(t *testing.T) {
		def, err := LoadDefinition("")
		require.NoError(t, err)
		assert.Equal(t, DefaultDefinition, def.Name)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feedback.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: feedback\nfields:\n  - name: comment\n"), 0o600))

		def, err := LoadDefinition(path)
		require.NoError(t, err)
		assert.Equal(t, "feedback", def.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDefinition(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
