//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package osversion

import "golang.org/x/sys/unix"

// queryUname is a seam for tests.
var queryUname = unameQuery

// unameQuery invokes the kernel identification call. A nil result means the
// call failed and the four fields are to be omitted.
func unameQuery() *unameInfo {
	var buf unix.Utsname
	if err := unix.Uname(&buf); err != nil {
		return nil
	}
	return &unameInfo{
		Sysname: unix.ByteSliceToString(buf.Sysname[:]),
		Release: unix.ByteSliceToString(buf.Release[:]),
		Version: unix.ByteSliceToString(buf.Version[:]),
		Machine: unix.ByteSliceToString(buf.Machine[:]),
	}
}
