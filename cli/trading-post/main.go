package main

import (
	"context"
	"log"
	"os"

	"github.com/viant/tradingpost/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.Run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
