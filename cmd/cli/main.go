package main

import (
	"context"
	"log"
	"os"

	"github.com/litoraledu/gestordoc/internal/buildinfo"
	"github.com/litoraledu/gestordoc/internal/client/cli"
	"github.com/litoraledu/gestordoc/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
