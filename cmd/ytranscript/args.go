package main

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// videoIDPattern matches the 11-character YouTube id alphabet, which includes
// a leading '-' for roughly one id in 64.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// positionalArgs inserts "--" ahead of a root-level argument that looks like
// a video id but would otherwise be parsed as flags ("-9dKj3vY_Ak"). Known
// root flags and their values are left in place.
func positionalArgs(root *cobra.Command, args []string) []string {
	root.InitDefaultHelpFlag()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			return args
		}
		if flag := lookupFlag(root, arg); flag != nil {
			if flag.NoOptDefVal == "" && !strings.Contains(arg, "=") {
				i++
			}
			continue
		}
		if videoIDPattern.MatchString(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		return args
	}
	return args
}

// lookupFlag resolves "--name", "--name=value" and a bare "-x" shorthand
// against the root command's flags.
func lookupFlag(root *cobra.Command, arg string) *pflag.Flag {
	sets := []*pflag.FlagSet{root.Flags(), root.PersistentFlags()}
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ = strings.Cut(name, "=")
		for _, set := range sets {
			if flag := set.Lookup(name); flag != nil {
				return flag
			}
		}
		return nil
	}
	if len(arg) != 2 {
		return nil
	}
	for _, set := range sets {
		if flag := set.ShorthandLookup(arg[1:]); flag != nil {
			return flag
		}
	}
	return nil
}
