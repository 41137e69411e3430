// Package main is the command line entrypoint of the legacy transaction decoder.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/utxo/rawtx"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Annotate          bool          `long:"annotate" env:"TXDECODE_ANNOTATE" description:"render script asm, addresses and BTC amounts"`
	Network           model.Network `long:"network" env:"TXDECODE_NETWORK" description:"network used for address encoding" default:"mainnet"`
	StrictCompactSize bool          `long:"strict-compact-size" env:"TXDECODE_STRICT_COMPACT_SIZE" description:"reject non-minimal compact size encodings"`
	Indent            int           `long:"indent" env:"TXDECODE_INDENT" description:"JSON indentation width in spaces" default:"2"`
	MetricsTextfile   string        `long:"metrics-textfile" env:"TXDECODE_METRICS_TEXTFILE" description:"write decoder metrics to this file in Prometheus text format"`
	Verbose           bool          `short:"v" long:"verbose" env:"TXDECODE_VERBOSE" description:"enable debug logging"`

	Args struct {
		Hex string `positional-arg-name:"hex" description:"raw transaction in hex" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	cfg := config{}

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	runErr := run(cfg, logger, os.Stdout)

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("failed to write metrics textfile",
				zap.String("path", cfg.MetricsTextfile),
				zap.Error(err),
			)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(cfg config, logger *zap.Logger, out io.Writer) error {
	var annotator service.Annotator
	if cfg.Annotate {
		decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
		if err != nil {
			return fmt.Errorf("init script decoder: %w", err)
		}
		annotator = bitcoin.NewTransactionAnnotator(decoder)
	}

	var opts []rawtx.Option
	if cfg.StrictCompactSize {
		opts = append(opts, rawtx.WithCanonicalCompactSize())
	}

	svc, err := service.NewTxDecoderService(
		metrics.NewDecoder(string(cfg.Network)),
		annotator,
		logger,
		opts...,
	)
	if err != nil {
		return err
	}

	hexTx := strings.TrimSpace(cfg.Args.Hex)

	var record any
	if cfg.Annotate {
		record, err = svc.DecodeAnnotated(hexTx)
	} else {
		record, err = svc.Decode(hexTx)
	}
	if err != nil {
		return err
	}

	body, err := transport.NewJSONRenderer(cfg.Indent).Render(record)
	if err != nil {
		return err
	}
	_, err = out.Write(body)
	return err
}
