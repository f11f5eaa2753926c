package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Now      func() time.Time
	Cache    docsearch.CacheStore
	Metadata docsearch.MetadataService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string        `name:"db" env:"DOCSEARCH_DB" default:"${db}" help:"Path to the cache database"`
	Repo    string        `env:"DOCSEARCH_REPO" default:"${repo}" help:"GitHub repository publishing the index (owner/repo)"`
	Timeout time.Duration `env:"DOCSEARCH_TIMEOUT" default:"${timeout}" help:"Timeout for each network request"`
	Verbose bool          `short:"v" help:"Log cache and network activity to stderr"`

	List   ListCmd   `cmd:"" help:"List all searchable documentation entries"`
	Status StatusCmd `cmd:"" help:"Show the cached snapshot"`
	Clear  ClearCmd  `cmd:"" help:"Remove the cached snapshot"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	JSON bool `help:"Print one JSON object per entry"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct{}
