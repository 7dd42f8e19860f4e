package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/caarlos0/env/v11"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// clientConfig is read from BLOG_API_* variables; flags override it.
type clientConfig struct {
	Address  string        `env:"ADDRESS" envDefault:"http://localhost:8080"`
	Token    string        `env:"TOKEN"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"15s"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"warn"`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("blog-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "blog API address")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "bearer token")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	showVersion := fs.Bool("version", false, "print build info and exit")
	fs.SetOutput(out)
	fs.Usage = func() { usage(fs) }
	if err = fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		printBuildInfo(out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return nil
	}

	log := logger.NewLogger("blog-client")
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	api, err := adapter.NewHTTPBlogAdapter(cfg.Address, cfg.Timeout, log)
	if err != nil {
		return err
	}
	api.SetToken(cfg.Token)

	if fs.NArg() == 0 {
		usage(fs)
		return errors.New("no command given")
	}

	return dispatch(ctx, api, fs.Arg(0), fs.Args()[1:], out)
}

func loadConfig() (clientConfig, error) {
	var cfg clientConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "BLOG_API_"}); err != nil {
		return clientConfig{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "usage: blog-client [flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	fmt.Fprintln(w, "  register <email> <password> [full name]")
	fmt.Fprintln(w, "  login <email> <password>")
	fmt.Fprintln(w, "  me")
	fmt.Fprintln(w, "  list [-skip N] [-limit N]")
	fmt.Fprintln(w, "  get <id>")
	fmt.Fprintln(w, "  create <title> <content>")
	fmt.Fprintln(w, "  delete <id>")
	fmt.Fprintln(w, "  health")
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Fprintln(w, line)
	}
}
