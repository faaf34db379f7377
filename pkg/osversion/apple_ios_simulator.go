//go:build ios && ios_simulator

package osversion

// iOS in the Xcode simulator. The simulator tag wins over ios_embedded,
// mirroring the precedence of the SDK target conditionals.
const appleOSName = "iOS Xcode"
