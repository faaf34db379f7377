package osversion

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOSVersion(t *testing.T) {
	line := GetOSVersion()

	require.NotEmpty(t, line)
	assert.True(t, utf8.ValidString(line))

	fields := parseLine(t, line)
	require.NotEmpty(t, fields)

	// The leading field is always one of the fixed per-platform names.
	assert.Contains(t, []string{
		"Linux", "Windows", "Android",
		"Darwin", "iOS", "iOS Xcode", "iOS embedded", "Apple",
	}, fields[0])
}

func TestGetOSVersionDeterministic(t *testing.T) {
	first := GetOSVersion()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GetOSVersion(), "output must be byte-identical across calls")
	}
}

func TestGetOSVersionFieldCountStable(t *testing.T) {
	want := len(parseLine(t, GetOSVersion()))
	for i := 0; i < 3; i++ {
		assert.Len(t, parseLine(t, GetOSVersion()), want)
	}
}
