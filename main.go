package main

import (
	"log"

	"duogito/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("Error: ")
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
