package bbcode

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

// Terminals announcing themselves through TERM_PROGRAM that render OSC 8.
var osc8TermPrograms = map[string]bool{
	"iTerm.app": true,
	"WezTerm":   true,
	"vscode":    true,
	"ghostty":   true,
}

// DetectOSC8Support reports whether the environment likely renders OSC 8
// hyperlinks. OSC8=0 or OSC8=1 overrides detection.
func DetectOSC8Support() bool {
	return detectOSC8(os.Getenv)
}

func detectOSC8(getenv func(string) string) bool {
	switch getenv("OSC8") {
	case "0":
		return false
	case "1":
		return true
	}
	if getenv("DOMTERM") != "" || getenv("WT_SESSION") != "" {
		return true
	}
	if osc8TermPrograms[getenv("TERM_PROGRAM")] {
		return true
	}
	if strings.Contains(strings.ToLower(getenv("TERM")), "kitty") {
		return true
	}
	// VTE gained OSC 8 in 0.50.
	if n, err := strconv.Atoi(getenv("VTE_VERSION")); err == nil && n >= 5000 {
		return true
	}
	return false
}
