// Command footrisk-predict is a command line client for the prediction service.
package main

import (
	"os"

	"github.com/okian/footrisk/internal/predictcli"
)

func main() {
	os.Exit(predictcli.Execute())
}
