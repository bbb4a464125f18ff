package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// isRunningInCI checks if we're running in a CI/CD environment
func isRunningInCI() bool {
	if os.Getenv("CI") != "" {
		return true
	}
	return hasAnyEnvVar([]string{
		"JENKINS_HOME",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"CONTINUOUS_INTEGRATION",
	})
}

// hasAnyEnvVar checks if any of the given environment variables are set
func hasAnyEnvVar(vars []string) bool {
	for _, v := range vars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// shouldUseJSON decides the output encoding: the --json flag forces it, and
// non-interactive environments (piped stdout, CI) default to it so the
// command composes well in scripts.
func shouldUseJSON(cmd *cobra.Command) bool {
	if jsonFlag, err := cmd.Flags().GetBool("json"); err == nil && jsonFlag {
		return true
	}
	if cmd.OutOrStdout() != os.Stdout {
		// Redirected output (tests, in-process callers) stays plain unless
		// --json was set.
		return false
	}
	if isRunningInCI() {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}
