package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"inventory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.Errorf("inventory: %v", err)
		os.Exit(1)
	}
}
