// Command modelweave prints or serves the xAI model catalog.
//
// Usage:
//
//	modelweave [list]          print the catalog as JSON
//	modelweave [-addr] serve   serve the catalog over HTTP
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/victorarias/modelweave/providers/xai"
	"github.com/victorarias/modelweave/server"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", ":8080", "listen address for serve")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "list"
	}

	adapter := xai.NewFromEnv()

	switch command {
	case "list":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(adapter.ListModels()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "serve":
		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		srv := server.New(adapter, log)
		log.Info().Str("addr", *addr).Msg("serving model catalog")
		if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected list or serve)\n", command)
		os.Exit(2)
	}
}
