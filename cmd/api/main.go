package main

import (
	"context"
	"log"
	"net/http"

	"emlak-press/api/router"
	"emlak-press/config"
	"emlak-press/db"
)

func main() {
	config.InitApp()
	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}
	r := router.New()

	if err := r.Run(":8080"); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
