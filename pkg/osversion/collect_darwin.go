//go:build darwin

package osversion

import "golang.org/x/sys/unix"

// collectPlatformFields fills in the Apple field schema: the compile-time OS
// name, the four kernel fields, then the hw.machine and hw.model hardware
// properties. The OS name is resolved from build constraints (see the
// apple_*.go files); build with -tags ios_simulator or -tags ios_embedded to
// select those variants, with the simulator taking precedence.
func collectPlatformFields(l *fieldList) {
	l.append(appleOSName)
	l.appendUname(queryUname())
	l.appendHardwareProperties(queryHardwareProperty)
}

// queryHardwareProperty is a seam for tests.
var queryHardwareProperty = hardwarePropertyQuery

func hardwarePropertyQuery(name string) (string, error) {
	return unix.Sysctl(name)
}
