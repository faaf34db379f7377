//go:build !windows && !darwin && !android

package osversion

// collectPlatformFields fills in the default field schema: the fixed
// "Linux" name followed by the four kernel fields. Platforms without a
// dedicated branch deliberately report through this one too; on targets
// with no kernel identification call only the name is emitted.
func collectPlatformFields(l *fieldList) {
	l.append("Linux")
	l.appendUname(queryUname())
}
