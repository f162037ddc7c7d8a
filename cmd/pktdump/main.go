// Command pktdump decodes a PKT capture and optionally mirrors it into Postgres.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/CypherCore/CypherCore-sub016/internal/config"
	"github.com/CypherCore/CypherCore-sub016/internal/db"
	"github.com/CypherCore/CypherCore-sub016/internal/packetlog"
)

const DefaultConfigPath = "config/pktdump.yaml"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: pktdump <capture.pkt>")
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, capturePath string) error {
	cfgPath := DefaultConfigPath
	if p := os.Getenv("PKTDUMP_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadPktDump(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	_, err = dump(ctx, cfg, capturePath)
	return err
}

// dump decodes every record of the capture at capturePath, mirroring it
// into Postgres when cfg.Mirror is enabled.
func dump(ctx context.Context, cfg config.PktDump, capturePath string) (decodeStats, error) {
	fr, err := packetlog.OpenFile(capturePath)
	if err != nil {
		return decodeStats{}, err
	}
	defer fr.Close()

	h := fr.Header()
	slog.Info("capture opened",
		"path", capturePath,
		"build", h.ClientBuild,
		"locale", string(h.Locale[:]),
		"start", h.StartTime)

	capture := filepath.Base(capturePath)
	var (
		sink packetlog.Sink
		repo *db.PacketRepository
	)
	if cfg.Mirror.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return decodeStats{}, fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return decodeStats{}, fmt.Errorf("running migrations: %w", err)
		}

		repo = database.Packets()
		removed, err := repo.DeleteCapture(ctx, capture)
		if err != nil {
			return decodeStats{}, fmt.Errorf("clearing previous mirror of %s: %w", capture, err)
		}
		if removed > 0 {
			slog.Info("replacing previous mirror", "capture", capture, "rows", removed)
		}
		sink = packetlog.NewPostgresSink(repo, capture, cfg.Mirror.BatchSize, cfg.Mirror.FlushInterval)
	}

	dec := newDecoder(cfg.Decode)
	records := make(chan packetlog.Record, cfg.Decode.QueueSize)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(records)
		for {
			rec, err := fr.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", capturePath, err)
			}
			select {
			case records <- rec:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	g.Go(func() error {
		for rec := range records {
			dec.handle(rec)
			if sink == nil {
				continue
			}
			if err := sink.Write(gctx, rec); err != nil {
				return err
			}
		}
		return nil
	})

	err = g.Wait()
	if sink != nil {
		err = errors.Join(err, sink.Close())
	}
	dec.stats.log()
	if err != nil {
		return dec.stats, err
	}

	if repo != nil {
		counts, err := repo.CountByOpcode(ctx, capture)
		if err != nil {
			return dec.stats, fmt.Errorf("summarizing mirror: %w", err)
		}
		for _, c := range counts {
			slog.Info("mirrored opcode",
				"direction", c.Direction,
				"opcode", fmt.Sprintf("0x%04X", c.Opcode),
				"name", c.OpcodeName,
				"count", c.Count)
		}
	}
	return dec.stats, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
