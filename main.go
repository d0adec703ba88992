package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/lambda/cli"
	"github.com/ardnew/lambda/log"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		log.Error("lambda failed", slog.Any("error", err))
		os.Exit(1)
	}
}
