// Package osversion produces a single diagnostic line describing the host
// operating system and hardware, suitable for inclusion in bug reports and
// telemetry payloads.
//
// The line is a comma-separated sequence of double-quoted, escaped fields.
// The first field is an OS name such as "Linux" or "iOS"; the remaining
// fields depend on the compile-time platform. Field order is a frozen
// contract: consumers parse by positional index, so for a given platform
// fields may only ever be appended, never reordered, inserted, or removed.
package osversion

// unknownField is substituted for any named lookup that fails, so that the
// field keeps its position in the line.
const unknownField = "Unknown"

// fieldList collects the ordered diagnostic fields for one call. Order is
// significant; see the package comment.
type fieldList struct {
	fields []string
}

func (l *fieldList) append(field string) {
	l.fields = append(l.fields, field)
}

// GetOSVersion returns detailed information about the OS this process is
// running on, as a single line of comma-separated, double-quoted fields.
//
// Underlying OS-query failures are absorbed locally: a failed kernel
// identification call omits its four fields entirely, while a failed named
// lookup yields "Unknown" in that field's position. The call never fails,
// and the output never includes machine-identifiable information such as
// the hostname.
//
// Callers embedding the line in a report conventionally append their own
// build-time version tag as one more quoted field; that tag is not produced
// here.
func GetOSVersion() string {
	var l fieldList
	collectPlatformFields(&l)
	return joinFields(l.fields)
}
