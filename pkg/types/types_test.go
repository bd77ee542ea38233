package types_test

import (
	"testing"

	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	assert.Len(t, types.AllCodes, 10)
	assert.Equal(t, []string{"Y", "B", "O", "G", "R", "P", "L", "GR", "H", "BR"}, types.CodeNames())

	for _, c := range types.AllCodes {
		assert.True(t, c.Valid(), "code %s", c)
		assert.NotEmpty(t, c.Meaning(), "code %s", c)
	}

	assert.False(t, types.Code("Z").Valid())
	assert.False(t, types.Code("y").Valid())
	assert.Equal(t, "", types.Code("Z").Meaning())
}

func TestCodeTags(t *testing.T) {
	assert.Equal(t, "[GR]", types.CodeGray.OpenTag())
	assert.Equal(t, "[/GR]", types.CodeGray.CloseTag())
}

func TestParseCode(t *testing.T) {
	c, err := types.ParseCode(" BR ")
	require.NoError(t, err)
	assert.Equal(t, types.CodeBrown, c)

	_, err = types.ParseCode("GREEN")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Mode
		wantErr bool
	}{
		{"", types.ModeHighlights, false},
		{"highlights", types.ModeHighlights, false},
		{"Highlight", types.ModeHighlights, false},
		{"UNDERLINE", types.ModeUnderline, false},
		{"both", types.ModeBoth, false},
		{"none", types.ModeNone, false},
		{"sparkle", types.ModeHighlights, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeUnmarshalText(t *testing.T) {
	var m types.Mode
	require.NoError(t, m.UnmarshalText([]byte("both")))
	assert.Equal(t, types.ModeBoth, m)

	assert.Error(t, m.UnmarshalText([]byte("loud")))
	assert.Equal(t, types.ModeBoth, m, "failed parse leaves value untouched")
}
