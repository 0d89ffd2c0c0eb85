package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/notes-api/pkg/notesclient"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	addr := flag.String("addr", "http://localhost:5247", "notes api base url")
	count := flag.Int("n", 3, "number of sample notes to create")
	cleanup := flag.Bool("cleanup", true, "delete the sample notes afterwards")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*60)
	defer cancel()

	if err := slogx.InitGlobal(os.Stdout, "info", true); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	c := notesclient.New(*addr)

	ids, err := createSamples(ctx, c, *count)
	if err != nil {
		return err
	}

	notes, err := c.ListNotes(ctx)
	if err != nil {
		return err
	}
	for _, n := range notes {
		slogx.Info(ctx, "note", slogx.NoteID(n.ID), slog.String("title", n.Title), slog.Time("created_at", n.CreatedAt))
	}

	if !*cleanup {
		return nil
	}

	for _, id := range ids {
		if err := c.DeleteNote(ctx, id); err != nil {
			return err
		}
	}
	slogx.Info(ctx, "sample notes deleted", slog.Int("count", len(ids)))

	return nil
}

func createSamples(ctx context.Context, c *notesclient.Client, n int) ([]int64, error) {
	ids := make([]int64, 0, n)
	for i := range n {
		content := sampleMessages[i%len(sampleMessages)]
		note, err := c.CreateNote(ctx, fmt.Sprintf("sample #%d", i+1), &content)
		if err != nil {
			return ids, err
		}

		ids = append(ids, note.ID)
		slogx.Info(ctx, "create note success", slogx.NoteID(note.ID))
	}

	return ids, nil
}
