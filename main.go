package main

import (
	"log"
	"os"

	"github.com/chasen-bettinger/fantasy-analysis/cmd"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cmd.Execute()
}
