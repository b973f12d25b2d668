// Command eon builds and inspects the Eon color palette.
package main

import (
	"os"

	"github.com/logstacklabs/eon/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
