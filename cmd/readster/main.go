package main

import (
	"log"

	"github.com/bhrigu123/readster/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ readster failed to start: %v", err)
	}
}
