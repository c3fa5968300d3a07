package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/todo"
)

// options holds the command-line configuration.
type options struct {
	store         string
	redisAddr     string
	redisDB       int
	redisPassword string
	logLevel      string
}

func main() {
	opts := parseFlags(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("todo-cli stopped with error: %v", err)
	}
}

// parseFlags parses command-line flags into options.
func parseFlags(args []string) options {
	var opts options

	fs := flag.NewFlagSet("todo-cli", flag.ExitOnError)
	fs.StringVar(&opts.store, "store", "memory", "Storage backend: memory or redis")
	fs.StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "Redis address")
	fs.IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	fs.StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	fs.StringVar(&opts.logLevel, "log-level", "error", "Log level")
	_ = fs.Parse(args)

	return opts
}

// newStore builds the configured store. The returned close func releases it.
func newStore(ctx context.Context, opts options) (todo.Store, func() error, error) {
	switch opts.store {
	case "memory":
		return todo.NewMemoryStore(), func() error { return nil }, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     opts.redisAddr,
			Password: opts.redisPassword,
			DB:       opts.redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return todo.NewRedisStore(rdb, "todo"), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", opts.store)
	}
}

// run wires the store, service and CLI and runs the menu loop.
func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	if err := logger.Initialize(opts.logLevel); err != nil {
		return err
	}
	defer logger.Sync()

	store, closeStore, err := newStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore()

	logger.Log.Debugw("todo store ready", "store", opts.store)

	return todo.NewCLI(todo.NewService(store), in, out).Run(ctx)
}
