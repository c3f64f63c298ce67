package main

import (
	"context"
	"log"

	"github.com/NVIDIA/inference-template/pkg/api"
	"github.com/NVIDIA/inference-template/pkg/config"
)

func main() {
	settings, err := config.Load(config.Options{})
	if err != nil {
		log.Fatal(err)
	}
	if err := api.Serve(context.Background(), settings); err != nil {
		log.Fatal(err)
	}
}
