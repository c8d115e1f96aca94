package opts

import "github.com/spf13/pflag"

type Options interface {
	AddToFlagSet(*pflag.FlagSet)
}

type Global struct {
	Verbose bool
}

func (g *Global) AddToFlagSet(set *pflag.FlagSet) {
	set.BoolVarP(&g.Verbose, "verbose", "v", false, "mirror the log file to stderr")
}
