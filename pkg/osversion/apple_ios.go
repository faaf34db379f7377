//go:build ios && !ios_simulator && !ios_embedded

package osversion

// iOS on iPhone, iPad, etc.
const appleOSName = "iOS"
