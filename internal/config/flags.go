package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port` or http(s) URL")
	errAddressPort   = errors.New("port number must be in 1..65535")
)

// APIAddress is the -a flag value: "host:port" or an http(s) base URL.
type APIAddress struct {
	raw string
}

func (a *APIAddress) String() string {
	if a == nil {
		return ""
	}
	return a.raw
}

// Set validates s and stores it unchanged.
func (a *APIAddress) Set(s string) error {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return fmt.Errorf("%w: %w", errAddressFormat, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errAddressFormat
		}
		if p := u.Port(); p != "" {
			if err := checkPort(p); err != nil {
				return err
			}
		}
		a.raw = s
		return nil
	}

	host, port, err := net.SplitHostPort(s)
	if err != nil || host == "" {
		return errAddressFormat
	}
	if err := checkPort(port); err != nil {
		return err
	}
	a.raw = s
	return nil
}

func checkPort(p string) error {
	n, err := strconv.Atoi(p)
	if err != nil || n < 1 || n > 65535 {
		return errAddressPort
	}
	return nil
}

// listFlag collects a comma separated list; repeating the flag appends.
type listFlag []string

func (l *listFlag) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// flagArgs returns the command-line arguments without the program name.
func flagArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// parseFlags reads a configuration layer from args.
//
// Flags:
//
//	-a remote document API address, host:port or http(s) URL
//	-adapter adapter kind ("http" or "memory")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key batch signing key
//	-client-id client identifier
//	-token bearer token
//	-storage storage kind ("sqlite" or "memory")
//	-d database DSN
//	-store-path local store root of the entity
//	-collection remote collection path
//	-page-size fetch page size
//	-max-batch-ops per-batch operation cap
//	-debounce debounce delay (e.g., "1s")
//	-status-settle patching -> idle settle delay (e.g., "300ms")
//	-insert-fillables fields kept on insert, comma separated
//	-patch-fillables fields kept on whole-record patches, comma separated
//	-insert-guard fields never written on insert, comma separated
//	-patch-guard fields never written on patches, comma separated
//	-channel-retry change channel retry interval (e.g., "5s")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	var address APIAddress
	var insertFillables, patchFillables, insertGuard, patchGuard listFlag

	fs := flag.NewFlagSet("go-doc-sync", flag.ContinueOnError)

	fs.Var(&address, "a", "Remote document API address (host:port or URL)")
	fs.StringVar(&cfg.Adapter.Kind, "adapter", "", "Adapter kind (http, memory)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.HashKey, "hash-key", "", "Batch signing key")
	fs.StringVar(&cfg.Adapter.ClientID, "client-id", "", "Client identifier")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token")

	fs.StringVar(&cfg.Storage.Kind, "storage", "", "Storage kind (sqlite, memory)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")

	fs.StringVar(&cfg.Sync.StorePath, "store-path", "", "Local store root of the entity")
	fs.StringVar(&cfg.Sync.CollectionPath, "collection", "", "Remote collection path")
	fs.IntVar(&cfg.Sync.PageSize, "page-size", 0, "Fetch page size")
	fs.IntVar(&cfg.Sync.MaxBatchOps, "max-batch-ops", 0, "Per-batch operation cap")
	fs.DurationVar(&cfg.Sync.Debounce, "debounce", 0, "Debounce delay (e.g., 1s)")
	fs.DurationVar(&cfg.Sync.StatusSettle, "status-settle", 0, "Status settle delay (e.g., 300ms)")
	fs.Var(&insertFillables, "insert-fillables", "Fields kept on insert (comma separated)")
	fs.Var(&patchFillables, "patch-fillables", "Fields kept on whole-record patches (comma separated)")
	fs.Var(&insertGuard, "insert-guard", "Fields never written on insert (comma separated)")
	fs.Var(&patchGuard, "patch-guard", "Fields never written on patches (comma separated)")

	fs.DurationVar(&cfg.Workers.ChannelRetryInterval, "channel-retry", 0, "Change channel retry interval (e.g., 5s)")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Adapter.Address = address.String()
	cfg.Sync.InsertFillables = insertFillables
	cfg.Sync.PatchFillables = patchFillables
	cfg.Sync.InsertGuard = insertGuard
	cfg.Sync.PatchGuard = patchGuard
	return cfg, nil
}

