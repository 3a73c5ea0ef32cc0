package main

import (
	"os"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
