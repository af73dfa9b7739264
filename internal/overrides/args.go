package overrides

import "strings"

// SplitArgs separates a raw argv tail into process flags and override
// tokens. Double-dash tokens (and the value a bare one consumes) belong to
// the override parser; everything else is left for the stdlib flag parser.
func SplitArgs(args []string) (flagArgs, overrideArgs []string) {
	for i := 0; i < len(args); i++ {
		if !strings.HasPrefix(args[i], "--") {
			flagArgs = append(flagArgs, args[i])
			continue
		}

		overrideArgs = append(overrideArgs, args[i])
		if !strings.Contains(args[i], "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			overrideArgs = append(overrideArgs, args[i])
		}
	}
	return flagArgs, overrideArgs
}
