package version

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// InstallMethod represents how catatan was installed.
type InstallMethod string

const (
	InstallMethodHomebrew InstallMethod = "homebrew"
	InstallMethodGo       InstallMethod = "go"
	InstallMethodBinary   InstallMethod = "binary"
)

const modulePath = "github.com/marcus/catatan"

var (
	detectedMethod     InstallMethod
	detectedMethodOnce sync.Once
)

// DetectInstallMethod determines how catatan was installed.
// Checks Homebrew first, then Go bin directories, falls back to binary.
// Result is cached for the lifetime of the process.
func DetectInstallMethod() InstallMethod {
	detectedMethodOnce.Do(func() {
		detectedMethod = detectInstallMethod()
	})
	return detectedMethod
}

func detectInstallMethod() InstallMethod {
	if isHomebrewInstall() {
		return InstallMethodHomebrew
	}
	if isGoInstall() {
		return InstallMethodGo
	}
	return InstallMethodBinary
}

// UpgradeHint returns the command that upgrades an install, or "" when
// there is none to suggest.
func UpgradeHint(method InstallMethod) string {
	switch method {
	case InstallMethodHomebrew:
		return "brew upgrade catatan"
	case InstallMethodGo:
		return "go install " + modulePath + "/cmd/catatan@latest"
	default:
		return ""
	}
}

// isHomebrewInstall checks if catatan was installed via Homebrew.
func isHomebrewInstall() bool {
	if runtime.GOOS != "darwin" && runtime.GOOS != "linux" {
		return false
	}
	if _, err := exec.LookPath("brew"); err != nil {
		return false
	}
	out, err := exec.Command("brew", "list", "--formula", "catatan").CombinedOutput()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

// isGoInstall checks if the current binary is in a Go bin directory.
func isGoInstall() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return false
	}
	home, _ := os.UserHomeDir()
	return inGoBin(exe, os.Getenv("GOBIN"), os.Getenv("GOPATH"), home)
}

// inGoBin reports whether exe sits in GOBIN, GOPATH/bin, ~/go/bin or any
// path containing /go/bin/.
func inGoBin(exe, gobin, gopath, home string) bool {
	dir := filepath.Dir(exe)
	if gobin != "" && dir == gobin {
		return true
	}
	if gopath != "" && dir == filepath.Join(gopath, "bin") {
		return true
	}
	if home != "" && dir == filepath.Join(home, "go", "bin") {
		return true
	}
	sep := string(filepath.Separator)
	return strings.Contains(exe, sep+"go"+sep+"bin"+sep)
}
