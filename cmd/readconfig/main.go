// readconfig inspects and updates reader display preferences and serves them over HTTP.
package main

import (
	"os"

	"github.com/listenupapp/readconfig/cmd/readconfig/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
