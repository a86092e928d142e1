package main

import (
	"context"

	"pos-backend/internal/pkg"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("App start")

	app, err := pkg.NewApp(context.Background())
	if err != nil {
		logrus.Fatal(err)
	}
	app.RunApp()

	logrus.Info("App terminated")
}
