package main

import (
	"profesionesuy-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to bootstrap application: %v", err)
	}
	app.Run()
}
