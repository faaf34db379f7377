//go:build ios && ios_embedded && !ios_simulator

package osversion

// iOS embedded elsewhere.
const appleOSName = "iOS embedded"
