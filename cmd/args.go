package cmd

import "strings"

// versionFlagPrefix is the historical colon form of the version flag. It is
// not pflag syntax, so the root command scans for it by hand.
const versionFlagPrefix = "--version:"

// options are the result of scanning the raw invocation arguments.
type options struct {
	// TargetVersion is the value of the first --version:<value> token, empty
	// when absent (or when the token carried no value).
	TargetVersion string
	ShowHelp      bool
}

// parseArgs scans the raw tokens. The first --version: match wins and every
// unrecognized token is ignored.
func parseArgs(args []string) options {
	var opts options
	versionSet := false

	for _, arg := range args {
		switch {
		case !versionSet && strings.HasPrefix(arg, versionFlagPrefix):
			opts.TargetVersion = strings.TrimPrefix(arg, versionFlagPrefix)
			versionSet = true
		case arg == "-h" || arg == "--help":
			opts.ShowHelp = true
		}
	}

	return opts
}
