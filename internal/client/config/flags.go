package config

import (
	"flag"
	"os"

	"github.com/litoraledu/gestordoc/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-d string   data directory for document collections
//	-i string   institutional email domain for share recipients
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for document collections")
	fs.StringVar(&cfg.InstitutionalDomain, "i", cfg.InstitutionalDomain, "institutional email domain")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
