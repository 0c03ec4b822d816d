package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"

	"github.com/MrSnakeDoc/folio/internal/app"
)

func main() {
	// A .env file is optional; the real environment always wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("❌ failed to read .env: %v", err)
	}

	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ portfolio failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ portfolio stopped with error: %v", err)
	}
}
