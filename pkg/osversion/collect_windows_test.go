//go:build windows

package osversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubWindowsQueries(t *testing.T, version *windowsVersion) {
	t.Helper()

	origVersion := queryWindowsVersion
	origProc := queryProcessorInfo
	t.Cleanup(func() {
		queryWindowsVersion = origVersion
		queryProcessorInfo = origProc
	})

	queryWindowsVersion = func() *windowsVersion { return version }
	queryProcessorInfo = func() processorInfo {
		return processorInfo{Architecture: 9, Level: 6, Revision: 1}
	}
}

func TestWindowsSchemaExtended(t *testing.T) {
	stubWindowsQueries(t, &windowsVersion{
		StructSize: 284,
		Major:      10, Minor: 0, Build: 19045,
		PlatformID:       2,
		ServicePackMajor: 1, ServicePackMinor: 2,
		SuiteMask:   256,
		ProductType: 1,
		Extended:    true,
	})

	fields := parseLine(t, GetOSVersion())
	require.Len(t, fields, 11)
	assert.Equal(t, "Windows", fields[0])
	assert.Equal(t, []string{"284", "10.0.19045", "2", ""}, fields[1:5])
	assert.Equal(t, []string{"1.2", "256", "1"}, fields[5:8])
	assert.Equal(t, []string{"9", "6", "1"}, fields[8:11])
}

func TestWindowsSchemaLegacyFallback(t *testing.T) {
	stubWindowsQueries(t, &windowsVersion{
		StructSize: 276,
		Major:      6, Minor: 1, Build: 7601,
		PlatformID: 2,
		CSDVersion: "Service Pack 1",
	})

	fields := parseLine(t, GetOSVersion())
	require.Len(t, fields, 8, "no service-pack, suite-mask, or product-type fields")
	assert.Equal(t, []string{"276", "6.1.7601", "2", "Service Pack 1"}, fields[1:5])
	assert.Equal(t, []string{"9", "6", "1"}, fields[5:8])
}

func TestWindowsSchemaVersionReadFailed(t *testing.T) {
	stubWindowsQueries(t, nil)

	// Processor fields are emitted even when both version reads fail.
	fields := parseLine(t, GetOSVersion())
	require.Len(t, fields, 4)
	assert.Equal(t, "Windows", fields[0])
	assert.Equal(t, []string{"9", "6", "1"}, fields[1:4])
}
