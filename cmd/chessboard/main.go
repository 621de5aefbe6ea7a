package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mvntahax/chess/internal/archive"
	appcfg "github.com/mvntahax/chess/internal/config"
	"github.com/mvntahax/chess/internal/msgcat"
	"github.com/mvntahax/chess/internal/obslog"
	"github.com/mvntahax/chess/internal/session"
	"github.com/mvntahax/chess/internal/snapshot"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = obslog.L().Sync() }()

	cat, err := msgcat.New(cfg.MsgcatOverrideDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	var store snapshot.Store
	if cfg.RedisURL != "" {
		store, err = snapshot.NewRedisStore(cfg.RedisURL, cfg.SnapshotPrefix, time.Duration(cfg.SnapshotTTLSec)*time.Second)
		if err != nil {
			log.Fatalf("snapshot store init error: %v", err)
		}
		obslog.L().Info("snapshot_store", zap.String("kind", "redis"), zap.String("prefix", cfg.SnapshotPrefix))
	} else {
		store = snapshot.NewMemoryStore()
		obslog.L().Info("snapshot_store", zap.String("kind", "memory"))
	}
	defer func() { _ = store.Close() }()

	var repo archive.Repository
	if cfg.DatabaseURL != "" {
		repo, err = archive.NewRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("archive init error: %v", err)
		}
		obslog.L().Info("archive_repo", zap.String("kind", "postgres"))
	} else {
		repo = archive.NewMemoryRepository()
		obslog.L().Info("archive_repo", zap.String("kind", "memory"))
	}
	defer func() { _ = repo.Close() }()

	presenter := newTerminalPresenter(cfg, cat)
	ctx := context.Background()
	mgr := session.NewManager(ctx, store, repo, presenter, cat)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println()
		fmt.Println(presenter.message("host.goodbye"))
		os.Exit(0)
	}()

	fmt.Println(presenter.message("host.help"))
	runLoop(ctx, mgr, presenter)
	fmt.Println(presenter.message("host.goodbye"))
}

func runLoop(ctx context.Context, mgr *session.Manager, presenter *terminalPresenter) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(presenter.message("host.prompt"))
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(strings.ToLower(strings.TrimSpace(scanner.Text())))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			fmt.Println(presenter.message("host.help"))
		case "show":
			presenter.ShowBoard(mgr.Game().Board)
		case "captures":
			for _, line := range mgr.Game().Log {
				fmt.Println(line)
			}
		case "reset":
			mgr.Reset(ctx)
		case "select":
			if r, c, ok := twoInts(fields[1:]); ok {
				mgr.Select(r, c)
			} else {
				fmt.Println(presenter.message("host.bad_command"))
			}
		case "move":
			if fr, fc, tr, tc, ok := fourInts(fields[1:]); ok {
				mgr.AttemptMove(ctx, fr, fc, tr, tc)
			} else {
				fmt.Println(presenter.message("host.bad_command"))
			}
		case "cursor":
			if len(fields) == 2 {
				mgr.MoveCursor(fields[1])
			} else {
				fmt.Println(presenter.message("host.bad_command"))
			}
		default:
			fmt.Println(presenter.message("host.bad_command"))
		}
	}
}

func twoInts(args []string) (int, int, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(args[0])
	b, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}

func fourInts(args []string) (int, int, int, int, bool) {
	if len(args) != 4 {
		return 0, 0, 0, 0, false
	}
	var vals [4]int
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], vals[3], true
}
