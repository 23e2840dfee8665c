package platform

// EnableAutostart registers the executable to launch at login using the
// OS-native mechanism (LaunchAgent, registry Run key, or desktop entry).
func EnableAutostart(appName, execPath string) error {
	return enableAutostart(appName, execPath)
}

// DisableAutostart removes the launch-at-login registration. Removing a
// registration that does not exist is not an error.
func DisableAutostart(appName string) error {
	return disableAutostart(appName)
}
