package cli

// Flags holds parsed global flags.
type Flags struct {
	Verbose bool
	NoColor bool
	DryRun  bool
	Version bool
	Help    bool
}

// ParseFlags extracts global flags from args and returns remaining args.
func ParseFlags(args []string) (Flags, []string) {
	var flags Flags
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			flags.Verbose = true
		case "--no-color":
			flags.NoColor = true
		case "--dry-run":
			flags.DryRun = true
		case "--version":
			flags.Version = true
		case "--help", "-h":
			flags.Help = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}
