// Command-line entrypoint for the admin dashboard
package main

import (
	"os"

	"spotlight/spotlight/cmd"
	"spotlight/spotlight/utils/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
