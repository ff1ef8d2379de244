package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"mecanica_quotes/internal/adapter/persistence/repository"
	"mecanica_quotes/internal/infrastructure/config"
	"mecanica_quotes/internal/infrastructure/database"
	"mecanica_quotes/internal/infrastructure/logger"
	"mecanica_quotes/internal/infrastructure/media"
	"mecanica_quotes/internal/infrastructure/quotepdf"
	"mecanica_quotes/internal/infrastructure/storage"
	"mecanica_quotes/internal/usecase"
	"mecanica_quotes/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type options struct {
	token    string
	source   string
	dir      string
	issuedBy string
	out      string
}

func parseFlags(args []string, cfg *config.Config) (options, error) {
	fs := flag.NewFlagSet("quotepdf", flag.ContinueOnError)
	var o options
	fs.StringVar(&o.token, "token", "", "public token of the quote to render (required)")
	fs.StringVar(&o.source, "source", cfg.Quotes.Source, "quote source: dynamodb or file")
	fs.StringVar(&o.dir, "dir", cfg.Quotes.Dir, "directory holding <token>.json files when -source=file")
	fs.StringVar(&o.issuedBy, "issued-by", "", "name printed as the issuer of the document")
	fs.StringVar(&o.out, "out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.token == "" {
		return options{}, errors.New("-token is required")
	}
	switch o.source {
	case config.SourceDynamoDB, config.SourceFile:
	default:
		return options{}, fmt.Errorf("invalid -source %q", o.source)
	}
	return o, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	opts, err := parseFlags(os.Args[1:], cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "quotepdf: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := run(ctx, cfg, opts, log)
	if err != nil {
		log.Error("quote document failed", zap.String("public_token", opts.token), zap.Error(err))
		stop()
		os.Exit(1)
	}
	log.Info("quote document written", zap.String("path", path))
}

func run(ctx context.Context, cfg *config.Config, opts options, log *zap.Logger) (string, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return "", fmt.Errorf("aws config: %w", err)
	}

	var repo interfaces.IQuoteRepository
	switch opts.source {
	case config.SourceFile:
		repo = repository.NewQuoteFileRepository(opts.dir)
	default:
		repo = repository.NewQuoteDynamoRepository(database.NewDynamoDBClient(awsCfg, cfg.AWS.DynamoDBEndpoint), cfg.Quotes.Table)
	}

	var s3Fetcher interfaces.IImageFetcher
	if cfg.Media.S3Enabled {
		s3Fetcher = media.NewS3Fetcher(storage.NewS3Client(awsCfg, cfg.AWS.S3Endpoint))
	}
	fetcher := media.NewRouter(
		media.NewHTTPFetcher(&http.Client{}, cfg.Media.FetchTimeout, log),
		s3Fetcher,
		media.NewLocalFetcher(cfg.Media.Root),
	)

	renderer := quotepdf.NewRenderer(fetcher,
		quotepdf.WithLogger(log.Named("quotepdf")),
		quotepdf.WithLocation(cfg.Location()),
		quotepdf.WithFetchConcurrency(cfg.Media.Concurrency),
	)
	uc := usecase.NewQuoteDocumentUseCase(repo, renderer, log)

	var issuedBy *string
	if opts.issuedBy != "" {
		issuedBy = &opts.issuedBy
	}
	doc, err := uc.GenerateByToken(ctx, opts.token, issuedBy)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(opts.out, doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
