package main

import (
	"log/slog"
	"os"

	"martianoff/flist/cmd/flist/commands"
)

func main() {
	// Until flags are parsed; the root command replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	commands.Execute()
}
