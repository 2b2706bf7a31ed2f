package main

import (
	"log"

	"github.com/nflorant/diagnosis/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("error: %v", err)
	}
}
