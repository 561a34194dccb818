// Command simpledns sends one DNS query to the configured servers and
// prints the decoded response. Configuration comes from SDNS_* env vars.
//
// Usage: simpledns <name> [type]
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/net/idna"

	"github.com/mcromptonjr/simpledns/internal/dns/common/log"
	"github.com/mcromptonjr/simpledns/internal/dns/config"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
	"github.com/mcromptonjr/simpledns/internal/dns/gateways/upstream"
	"github.com/mcromptonjr/simpledns/internal/dns/gateways/wire"
)

const (
	version = "0.1.0-dev"
	appName = "simpledns"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <name> [type]\n", appName)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	rrtype := domain.RRTypeA
	if len(os.Args) == 3 {
		rrtype = domain.RRTypeFromString(os.Args[2])
		if rrtype == 0 {
			fmt.Fprintf(os.Stderr, "unknown record type: %s\n", os.Args[2])
			os.Exit(2)
		}
	}

	// Queries travel as ASCII; convert IDN names to their punycode
	// lookup form before encoding.
	name, err := idna.Lookup.ToASCII(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid name %q: %v\n", os.Args[1], err)
		os.Exit(2)
	}

	question, err := domain.NewQuestion(name, rrtype, domain.RRClassIN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid question: %v\n", err)
		os.Exit(2)
	}

	header := domain.NewQueryHeader(uint16(rand.Uint32()))
	header.RD = true
	msg := domain.NewMessage(header)
	msg.AddQuestion(question)

	codec := wire.NewUDPCodec(log.GetLogger())
	resolver, err := upstream.NewResolver(upstream.Options{
		Servers: cfg.Servers,
		Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		Codec:   codec,
	})
	if err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "Failed to build resolver")
	}

	log.Info(map[string]any{
		"version": version,
		"name":    name,
		"type":    rrtype.String(),
		"servers": cfg.Servers,
	}, "Sending DNS query")

	resp, err := resolver.Exchange(context.Background(), msg)
	if err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "Query failed")
	}

	fmt.Print(resp)
}
