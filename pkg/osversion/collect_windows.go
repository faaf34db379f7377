//go:build windows

package osversion

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32       = windows.NewLazySystemDLL("kernel32.dll")
	procGetVersionExW = modkernel32.NewProc("GetVersionExW")
	procGetSystemInfo = modkernel32.NewProc("GetSystemInfo")
)

// osVersionInfoEx mirrors OSVERSIONINFOEXW. The legacy OSVERSIONINFOW is
// the same layout truncated after CSDVersion; the variant actually read is
// selected by the size written to OSVersionInfoSize before the call.
type osVersionInfoEx struct {
	OSVersionInfoSize uint32
	MajorVersion      uint32
	MinorVersion      uint32
	BuildNumber       uint32
	PlatformID        uint32
	CSDVersion        [128]uint16
	ServicePackMajor  uint16
	ServicePackMinor  uint16
	SuiteMask         uint16
	ProductType       byte
	Reserved          byte
}

// systemInfo mirrors SYSTEM_INFO.
type systemInfo struct {
	ProcessorArchitecture     uint16
	Reserved                  uint16
	PageSize                  uint32
	MinimumApplicationAddress uintptr
	MaximumApplicationAddress uintptr
	ActiveProcessorMask       uintptr
	NumberOfProcessors        uint32
	ProcessorType             uint32
	AllocationGranularity     uint32
	ProcessorLevel            uint16
	ProcessorRevision         uint16
}

// collectPlatformFields fills in the Windows field schema: the fixed name,
// the version fields when either version read succeeds, then the three
// processor fields, which are emitted unconditionally.
func collectPlatformFields(l *fieldList) {
	l.append("Windows")
	l.appendWindowsVersion(queryWindowsVersion())
	l.appendProcessorInfo(queryProcessorInfo())
}

// queryWindowsVersion and queryProcessorInfo are seams for tests.
var (
	queryWindowsVersion = versionExQuery
	queryProcessorInfo  = systemInfoQuery
)

// versionExQuery reads the OS version, trying the extended structure first
// and retrying with the legacy structure size before giving up.
func versionExQuery() *windowsVersion {
	var info osVersionInfoEx

	info.OSVersionInfoSize = uint32(unsafe.Sizeof(info))
	extended := true

	ret, _, _ := procGetVersionExW.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		info = osVersionInfoEx{}
		info.OSVersionInfoSize = uint32(unsafe.Offsetof(info.ServicePackMajor))
		extended = false

		ret, _, _ = procGetVersionExW.Call(uintptr(unsafe.Pointer(&info)))
		if ret == 0 {
			return nil
		}
	}

	return &windowsVersion{
		StructSize:       info.OSVersionInfoSize,
		Major:            info.MajorVersion,
		Minor:            info.MinorVersion,
		Build:            info.BuildNumber,
		PlatformID:       info.PlatformID,
		CSDVersion:       windows.UTF16ToString(info.CSDVersion[:]),
		ServicePackMajor: info.ServicePackMajor,
		ServicePackMinor: info.ServicePackMinor,
		SuiteMask:        info.SuiteMask,
		ProductType:      info.ProductType,
		Extended:         extended,
	}
}

// systemInfoQuery reads the processor description. GetSystemInfo has no
// failure path.
func systemInfoQuery() processorInfo {
	var si systemInfo
	_, _, _ = procGetSystemInfo.Call(uintptr(unsafe.Pointer(&si)))
	return processorInfo{
		Architecture: si.ProcessorArchitecture,
		Level:        si.ProcessorLevel,
		Revision:     si.ProcessorRevision,
	}
}
