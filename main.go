/*
Copyright © 2025 docusage
*/
package main

import (
	"github.com/docusage/docusage-be/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional outside local development
	godotenv.Load()
}
