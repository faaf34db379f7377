//go:build darwin && !ios

package osversion

const appleOSName = "Darwin"
