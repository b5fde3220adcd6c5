package hypershift

import (
	"os"
	"os/exec"
)

// LookupBinary resolves the path to the hypershift binary. Resolution
// order, first match wins:
//
//  1. HYPERSHIFT_BINARY environment variable (must name an existing
//     regular file)
//  2. configuredPath, the hypershift_binary config setting (same
//     requirement)
//  3. "hypershift" on the system search path
//
// This is a pure lookup; the binary is never executed to probe it.
// A miss returns ErrToolNotFound with remediation steps.
func LookupBinary(configuredPath string) (string, error) {
	if p := os.Getenv(EnvBinary); p != "" && isFile(p) {
		return p, nil
	}

	if configuredPath != "" && isFile(configuredPath) {
		return configuredPath, nil
	}

	if p, err := exec.LookPath("hypershift"); err == nil {
		return p, nil
	}

	return "", ErrToolNotFound
}

// Installed reports whether the hypershift binary can be resolved.
func Installed(configuredPath string) bool {
	_, err := LookupBinary(configuredPath)
	return err == nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
