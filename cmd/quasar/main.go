package main

import (
	"errors"
	"io"
	"os"
	"quasar/internal/app"

	log "github.com/sirupsen/logrus"
)

func main() {
	err := app.NewApp(os.Stdin, os.Stdout).Run()
	if err != nil {
		// Конец ввода — обычный выход
		if errors.Is(err, io.EOF) {
			os.Exit(0)
		}
		log.Fatalf("quasar stopped: %v", err)
	}
}
