package parser

import (
	"testing"

	"github.com/erraggy/oasts/oaserrors"
	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  OASVersion
		ok    bool
	}{
		{"3.1.0", OASVersion310, true},
		{"3.1.1", OASVersion311, true},
		{"3.1.2", OASVersion312, true},
		{"3.1.9", OASVersion312, true},
		{"3.1", Unknown, false},
		{"3.1.0-rc1", Unknown, false},
		{"3.0.3", Unknown, false},
		{"3.2.0", Unknown, false},
		{"2.0", Unknown, false},
		{"v3.1.0", Unknown, false},
		{"3.1.+1", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVersion(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOASVersionString(t *testing.T) {
	assert.Equal(t, "3.1.0", OASVersion310.String())
	assert.Equal(t, "3.1.2", OASVersion312.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestCheckVersion(t *testing.T) {
	_, err := checkVersion("")
	assert.ErrorIs(t, err, oaserrors.ErrUnsupportedVersion)
	assert.Contains(t, err.Error(), "does not declare")

	_, err = checkVersion("3.0.0")
	assert.ErrorIs(t, err, oaserrors.ErrUnsupportedVersion)
	assert.Contains(t, err.Error(), "3.0.0")

	v, err := checkVersion("3.1.1")
	assert.NoError(t, err)
	assert.Equal(t, OASVersion311, v)
}

func TestParseSemVer(t *testing.T) {
	v, err := parseVersion("3.1.0-rc1")
	assert.NoError(t, err)
	assert.Equal(t, "3.1.0-rc1", v.String())
	assert.True(t, v.hasPatch)

	v, err = parseVersion("3.1")
	assert.NoError(t, err)
	assert.False(t, v.hasPatch)

	for _, bad := range []string{"", "3", "3.1.0.0", "a.b.c", "3.-1.0"} {
		_, err := parseVersion(bad)
		assert.Error(t, err, bad)
	}
}
