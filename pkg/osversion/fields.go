package osversion

import (
	"fmt"
	"strconv"
)

// unameInfo carries the four kernel identification fields in wire order.
type unameInfo struct {
	Sysname string
	Release string
	Version string
	Machine string
}

// appendUname appends the four kernel fields, or nothing at all when the
// kernel identification call failed (info == nil). Partial output is never
// produced: either all four fields appear or none do.
func (l *fieldList) appendUname(info *unameInfo) {
	if info == nil {
		return
	}
	l.append(info.Sysname)
	l.append(info.Release)
	l.append(info.Version)
	l.append(info.Machine)
}

// hardwarePropertyKeys are the named hardware properties appended on Apple
// platforms, in wire order.
var hardwarePropertyKeys = []string{
	"hw.machine",
	"hw.model",
}

// appendHardwareProperties appends one field per hardware property key,
// substituting "Unknown" for any key whose lookup fails. Failures are
// handled independently per key.
func (l *fieldList) appendHardwareProperties(query func(string) (string, error)) {
	for _, key := range hardwarePropertyKeys {
		value, err := query(key)
		if err != nil {
			value = unknownField
		}
		l.append(value)
	}
}

// systemPropertyKeys is the ordered list of Android system properties
// appended after the kernel fields. The order affects how the server parses
// the OS details, so it can't be changed; new entries go at the end.
var systemPropertyKeys = []string{
	"ro.product.model",
	"ro.product.brand",
	"ro.product.name",
	"ro.product.device",
	"ro.product.board",
	"ro.product.manufacturer",
	"ro.build.id",
	"ro.build.display.id",
	"ro.build.version.incremental",
	"ro.build.version.sdk",
	"ro.build.version.codename",
	"ro.build.version.release",
}

// appendSystemProperties appends one field per system property key,
// substituting "Unknown" when the property is absent or empty. Lookups are
// handled independently per key, so a miss never shifts later positions.
func (l *fieldList) appendSystemProperties(lookup func(string) (string, bool)) {
	for _, key := range systemPropertyKeys {
		value, ok := lookup(key)
		if !ok || value == "" {
			value = unknownField
		}
		l.append(value)
	}
}

// windowsVersion carries the result of a successful Windows version read.
// Extended reports whether the extended structure was populated; the
// service-pack, suite-mask, and product-type fields are emitted only in
// that case, and consumers detect which variant they got from the field
// count.
type windowsVersion struct {
	StructSize       uint32
	Major            uint32
	Minor            uint32
	Build            uint32
	PlatformID       uint32
	CSDVersion       string
	ServicePackMajor uint16
	ServicePackMinor uint16
	SuiteMask        uint16
	ProductType      byte
	Extended         bool
}

// appendWindowsVersion appends the version fields, or nothing at all when
// both the extended and the legacy reads failed (v == nil).
func (l *fieldList) appendWindowsVersion(v *windowsVersion) {
	if v == nil {
		return
	}
	l.append(strconv.FormatUint(uint64(v.StructSize), 10))
	l.append(fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build))
	l.append(strconv.FormatUint(uint64(v.PlatformID), 10))
	l.append(v.CSDVersion)
	if v.Extended {
		l.append(fmt.Sprintf("%d.%d", v.ServicePackMajor, v.ServicePackMinor))
		l.append(strconv.FormatUint(uint64(v.SuiteMask), 10))
		l.append(strconv.FormatUint(uint64(v.ProductType), 10))
	}
}

// processorInfo carries the three processor fields that are always present
// on Windows, regardless of whether the version read succeeded.
type processorInfo struct {
	Architecture uint16
	Level        uint16
	Revision     uint16
}

func (l *fieldList) appendProcessorInfo(p processorInfo) {
	l.append(strconv.FormatUint(uint64(p.Architecture), 10))
	l.append(strconv.FormatUint(uint64(p.Level), 10))
	l.append(strconv.FormatUint(uint64(p.Revision), 10))
}
