package main

import (
	"context"
	"io"

	"github.com/fwojciec/scorelib"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Library scorelib.LibraryService
	Config  scorelib.ConfigStore
	Scores  scorelib.ScoreStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	SQLiteIndex string `name:"sqlite-index" help:"Keep the catalog in a SQLite database at this path instead of index.json"`

	Add    AddCmd    `cmd:"" help:"Add a PDF score to the library"`
	List   ListCmd   `cmd:"" help:"List library documents"`
	Search SearchCmd `cmd:"" help:"Search documents by title, composer, or instrument"`
	Edit   EditCmd   `cmd:"" help:"Edit a document's metadata"`
	Open   OpenCmd   `cmd:"" help:"Open a document and print its file path"`
	Delete DeleteCmd `cmd:"" help:"Delete a document and its files"`
	Repair RepairCmd `cmd:"" help:"Reconcile the catalog against document records"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Path       string `arg:"" help:"Path to the PDF file"`
	Title      string `short:"t" help:"Title (defaults to the file name)"`
	Composer   string `short:"c" help:"Composer"`
	Instrument string `short:"i" help:"Instrument"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	SortBy    string `help:"Sort field: title, composer, dateAdded, lastAccessed (defaults to the configured order)"`
	Direction string `help:"Sort direction: asc or desc"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search terms"`
	Limit int    `short:"n" help:"Maximum number of results"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	ID         string  `arg:"" help:"Document ID"`
	Title      *string `short:"t" help:"New title"`
	Composer   *string `short:"c" help:"New composer"`
	Instrument *string `short:"i" help:"New instrument"`
	SortOrder  *int    `help:"New sort order"`
	SideBySide *bool   `help:"Two-page viewing mode"`
	PageOffset *bool   `help:"Page numbering offset"`
}

// OpenCmd is the "open" subcommand.
type OpenCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// RepairCmd is the "repair" subcommand.
type RepairCmd struct{}
