package op_service

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

// FormatVersion renders the version string reported by --version and the info metric.
func FormatVersion(version string, gitCommit string, gitDate string, meta string) string {
	parts := []string{version}
	if gitCommit != "" {
		if len(gitCommit) > 8 {
			gitCommit = gitCommit[:8]
		}
		parts = append(parts, gitCommit)
	}
	if gitDate != "" {
		parts = append(parts, gitDate)
	}
	if meta != "" {
		parts = append(parts, meta)
	}
	return strings.Join(parts, "-")
}

// PrefixEnvVar returns the env var names for a flag, given the service prefix.
func PrefixEnvVar(prefix, suffix string) []string {
	return []string{prefix + "_" + suffix}
}

// ValidateEnvVars logs a warning for every env var that carries the service
// prefix but does not belong to any of the given flags. Typos in env var
// names otherwise silently fall back to flag defaults.
func ValidateEnvVars(prefix string, flags []cli.Flag, l log.Logger) {
	for _, envVar := range unknownEnvVars(prefix, flags, os.Environ()) {
		l.Warn("Unknown env var", "prefix", prefix, "env_var", envVar)
	}
}

func unknownEnvVars(prefix string, flags []cli.Flag, env []string) []string {
	defined := cliFlagsToEnvVars(flags)
	var unknown []string
	for _, kv := range env {
		key, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, prefix+"_") {
			continue
		}
		if _, ok := defined[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

func cliFlagsToEnvVars(flags []cli.Flag) map[string]struct{} {
	out := make(map[string]struct{})
	for _, f := range flags {
		ef, ok := f.(interface{ GetEnvVars() []string })
		if !ok {
			panic(fmt.Sprintf("flag %v does not expose env vars", f.Names()))
		}
		for _, name := range ef.GetEnvVars() {
			out[name] = struct{}{}
		}
	}
	return out
}
