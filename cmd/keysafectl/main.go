package main

import (
	"log"
	"os"

	"github.com/keysafe-protocol/keysafe/internal/client/cli"
)

func main() {
	if err := cli.NewApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
