package srmockcli

import "github.com/osvaldoandrade/srmock/internal/cli"

// Execute runs the srmock command line and returns the process exit code.
func Execute() int {
	return cli.Execute()
}
