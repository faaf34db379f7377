//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows

package osversion

// No kernel identification call exists on this target. Treating it as a
// permanent failure omits the four fields, matching the behavior on
// platforms where the call exists but fails.
var queryUname = func() *unameInfo { return nil }
