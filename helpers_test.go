package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	config := Config{
		"name":  "bundle",
		"count": 42,
	}

	t.Run("existing string", func(t *testing.T) {
		v, ok := GetString(config, "name")
		assert.True(t, ok)
		assert.Equal(t, "bundle", v)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, ok := GetString(config, "count")
		assert.False(t, ok)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := GetString(config, "absent")
		assert.False(t, ok)
	})
}

func TestGetInt(t *testing.T) {
	config := Config{
		"int":     42,
		"int64":   int64(43),
		"float64": float64(44),
		"string":  "45",
	}

	t.Run("int", func(t *testing.T) {
		v, ok := GetInt(config, "int")
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("int64", func(t *testing.T) {
		v, ok := GetInt(config, "int64")
		assert.True(t, ok)
		assert.Equal(t, 43, v)
	})

	t.Run("float64 from decoded json", func(t *testing.T) {
		v, ok := GetInt(config, "float64")
		assert.True(t, ok)
		assert.Equal(t, 44, v)
	})

	t.Run("string is not coerced", func(t *testing.T) {
		_, ok := GetInt(config, "string")
		assert.False(t, ok)
	})
}

func TestGetBool(t *testing.T) {
	config := Config{"strict": true, "label": "yes"}

	v, ok := GetBool(config, "strict")
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = GetBool(config, "label")
	assert.False(t, ok)

	_, ok = GetBool(config, "absent")
	assert.False(t, ok)
}

func TestGetStringSlice(t *testing.T) {
	t.Run("typed slice is copied", func(t *testing.T) {
		original := []string{"a.js", "b.js"}
		config := Config{"files": original}

		v, ok := GetStringSlice(config, "files")
		assert.True(t, ok)
		assert.Equal(t, original, v)

		v[0] = "mutated"
		assert.Equal(t, "a.js", original[0])
	})

	t.Run("interface slice of strings", func(t *testing.T) {
		config := Config{"files": []interface{}{"a.js", "b.js"}}
		v, ok := GetStringSlice(config, "files")
		assert.True(t, ok)
		assert.Equal(t, []string{"a.js", "b.js"}, v)
	})

	t.Run("interface slice with a non-string", func(t *testing.T) {
		config := Config{"files": []interface{}{"a.js", 2}}
		_, ok := GetStringSlice(config, "files")
		assert.False(t, ok)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := GetStringSlice(Config{}, "files")
		assert.False(t, ok)
	})
}
