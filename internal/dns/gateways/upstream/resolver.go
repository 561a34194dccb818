// Package upstream sends encoded DNS queries to a configured list of
// servers over UDP. Servers are tried strictly in order, one attempt
// each with a fixed timeout; a timeout or I/O failure falls through to
// the next server. There is no retry against the same server and no
// parallel probing.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
	"github.com/mcromptonjr/simpledns/internal/dns/gateways/wire"
)

// Error message constants for consistent error handling
const (
	errNoServersProvided = "no DNS servers provided"
	errCodecRequired     = "DNS codec is required"
	errAllServersFailed  = "all %d servers failed"
	errFailedToConnect   = "failed to connect: %w"
	errEncodeFailed      = "encode failed: %w"
	errWriteFailed       = "write failed: %w"
	errReadFailed        = "read failed: %w"
)

// maxResponseSize bounds one UDP read. Plain DNS over UDP without
// EDNS(0) never exceeds 512 bytes (RFC 1035 §4.2.1).
const maxResponseSize = 512

// DialFunc defines a function type for establishing a network connection.
// It matches net.Dialer.DialContext so tests can inject a fake transport.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Resolver is the UDP client collaborator of the message codec. It owns
// no DNS semantics beyond matching the response ID to the query ID.
type Resolver struct {
	servers []string      // ordered list of servers (e.g. "1.1.1.1:53")
	timeout time.Duration // fixed timeout per server attempt
	codec   wire.DNSCodec
	dial    DialFunc
}

// Options defines configuration parameters for the resolver: the server
// list, the per-attempt timeout, the codec, and an optional dial
// function injected by tests.
type Options struct {
	// required parameters
	Servers []string
	Timeout time.Duration
	Codec   wire.DNSCodec
	// option to inject for testing purposes
	Dial DialFunc
}

// NewResolver creates a resolver with the specified options. Returns an
// error if the server list is empty or the codec is missing. The
// timeout defaults to 2 seconds when unset.
func NewResolver(opts Options) (*Resolver, error) {
	if len(opts.Servers) == 0 {
		return nil, errors.New(errNoServersProvided)
	}
	if opts.Codec == nil {
		return nil, errors.New(errCodecRequired)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	if opts.Dial == nil {
		opts.Dial = (&net.Dialer{}).DialContext
	}
	return &Resolver{
		servers: opts.Servers,
		timeout: opts.Timeout,
		codec:   opts.Codec,
		dial:    opts.Dial,
	}, nil
}

// Exchange encodes the query once, then walks the server list in order.
// The first successfully decoded response wins; every failure carries on
// to the next server and the last error is reported if all fail.
func (r *Resolver) Exchange(ctx context.Context, query domain.Message) (domain.Message, error) {
	queryBytes, err := r.codec.EncodeMessage(query)
	if err != nil {
		return domain.Message{}, fmt.Errorf(errEncodeFailed, err)
	}

	var lastErr error
	for _, server := range r.servers {
		resp, err := r.queryServer(ctx, server, queryBytes, query.Header.ID)
		if err == nil {
			return resp, nil
		}
		lastErr = fmt.Errorf("server %s: %w", server, err)
		if ctx.Err() != nil {
			break
		}
	}
	return domain.Message{}, fmt.Errorf(errAllServersFailed+": %w", len(r.servers), lastErr)
}

// queryServer performs one attempt against one server with the fixed
// per-attempt timeout.
func (r *Resolver) queryServer(ctx context.Context, server string, queryBytes []byte, expectedID uint16) (domain.Message, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	conn, err := r.dial(attemptCtx, "udp", server)
	if err != nil {
		return domain.Message{}, fmt.Errorf(errFailedToConnect, err)
	}
	defer conn.Close()

	if deadline, ok := attemptCtx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(queryBytes); err != nil {
		return domain.Message{}, fmt.Errorf(errWriteFailed, err)
	}

	buffer := make([]byte, maxResponseSize)
	n, err := conn.Read(buffer)
	if err != nil {
		return domain.Message{}, fmt.Errorf(errReadFailed, err)
	}

	resp, err := r.codec.DecodeMessage(buffer[:n], 0)
	if err != nil {
		return domain.Message{}, err
	}
	if resp.Header.ID != expectedID {
		return domain.Message{}, fmt.Errorf("ID mismatch: expected %d, got %d", expectedID, resp.Header.ID)
	}
	return resp, nil
}
