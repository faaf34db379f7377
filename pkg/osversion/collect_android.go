//go:build android

package osversion

import (
	"os/exec"
	"strings"
)

// apiLevel is the Android API level targeted at build time. Go has no
// compiler-provided equivalent of __ANDROID_API__, so inject it with
//
//	-ldflags "-X github.com/pwithnall/libosversion/pkg/osversion.apiLevel=34"
//
// The field occupies a fixed wire position, so it defaults to "0" rather
// than being omitted.
var apiLevel = "0"

// collectPlatformFields fills in the Android field schema: the fixed name,
// the build-time API level, the four kernel fields, then one field per key
// in systemPropertyKeys.
func collectPlatformFields(l *fieldList) {
	l.append("Android")
	l.append(apiLevel)
	l.appendUname(queryUname())
	l.appendSystemProperties(querySystemProperty)
}

// querySystemProperty is a seam for tests.
var querySystemProperty = getprop

// getprop shells out to the platform getprop tool. __system_property_get is
// only reachable through cgo, and the property service socket protocol is
// not stable across Android releases.
func getprop(key string) (string, bool) {
	out, err := exec.Command("getprop", key).Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}
