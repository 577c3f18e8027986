package keys

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RecognizedNames(t *testing.T) {
	for _, name := range Names() {
		k, err := Validate(name)
		require.NoError(t, err, "name %q", name)
		assert.True(t, k.Valid())
		assert.Equal(t, name, k.String())
	}
}

func TestValidate_AliasesAreSuggestedNotAccepted(t *testing.T) {
	for alias, want := range Aliases() {
		k, err := Validate(alias)
		require.Error(t, err, "alias %q", alias)
		assert.Equal(t, Unknown, k)

		var invalid *InvalidKeyNameError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, want.String(), invalid.Suggestion)
	}

	_, err := Validate("Enter")
	assert.EqualError(t, err, "Provided key name was invalid: Enter (did you mean Return?)")
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "PageUp", Suggest("pageup"))
	assert.Equal(t, "PageUp", Suggest("PAGEUP"))
	assert.Equal(t, "Escape", Suggest("Esc"))
	assert.Equal(t, "", Suggest("NotAKey"))
	assert.Equal(t, "", Suggest(""))
}

func TestAliases_DoNotShadowKeyNames(t *testing.T) {
	for alias, k := range Aliases() {
		_, isName := byName[alias]
		assert.False(t, isName, "alias %q is also a key name", alias)
		assert.True(t, k.Valid())
	}
}

func TestValidate_UnknownNames(t *testing.T) {
	tests := []string{
		"",
		"pageup",
		"PAGEUP",
		" PageUp",
		"PageUp ",
		"Unknown",
		"NotAKey",
		"F13",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			k, err := Validate(name)
			require.Error(t, err)
			assert.Equal(t, Unknown, k)
			assert.True(t, errors.Is(err, ErrInvalidKeyName))

			var invalid *InvalidKeyNameError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, name, invalid.Name)
			assert.Contains(t, err.Error(), "Provided key name was invalid: "+name)
		})
	}
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "PageUp", PageUp.String())
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Unknown", Key(-3).String())
	assert.Equal(t, "Unknown", keyCount.String())
	assert.False(t, Unknown.Valid())
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	assert.Len(t, names, int(keyCount)-1)
	assert.IsNonDecreasing(t, names)
	assert.NotContains(t, names, "Unknown")
}
