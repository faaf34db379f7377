//go:build !windows && !darwin && !android

package osversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSchema(t *testing.T) {
	orig := queryUname
	t.Cleanup(func() { queryUname = orig })

	queryUname = func() *unameInfo {
		return &unameInfo{
			Sysname: "Linux",
			Release: "6.1.0",
			Version: "#1 SMP",
			Machine: "x86_64",
		}
	}
	assert.Equal(t, `"Linux", "Linux", "6.1.0", "#1 SMP", "x86_64"`, GetOSVersion())
}

func TestDefaultSchemaUnameFailure(t *testing.T) {
	orig := queryUname
	t.Cleanup(func() { queryUname = orig })

	// A failed kernel identification call omits the four fields entirely;
	// the line still carries the OS name.
	queryUname = func() *unameInfo { return nil }
	assert.Equal(t, `"Linux"`, GetOSVersion())
}
