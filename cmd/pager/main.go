package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/litebase/pager/pkg/cli/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// A missing .env file is fine, the environment may be set directly.
	godotenv.Load()

	if err := cmd.NewRoot(); err != nil {
		os.Exit(1)
	}
}
