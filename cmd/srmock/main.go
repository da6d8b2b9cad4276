package main

import (
	"os"

	"github.com/osvaldoandrade/srmock/pkg/srmockcli"
)

func main() {
	os.Exit(srmockcli.Execute())
}
