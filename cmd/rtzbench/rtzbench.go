package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"

	"github.com/spacemeshos/rtzbench/bench"
	"github.com/spacemeshos/rtzbench/config"
	"github.com/spacemeshos/rtzbench/samples"
	"github.com/spacemeshos/rtzbench/trim"
)

var (
	configPath  string
	numSamples  int
	maxDigits32 int
	maxDigits64 int
	minDuration time.Duration
	run32       bool
	run64       bool
	logLevel    string
	logEncoder  string
)

func init() {
	defaults := config.DefaultConfig()
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to an optional config file")
	cmd.PersistentFlags().IntVar(&numSamples, "samples",
		defaults.Samples, "number of random samples per suite")
	cmd.PersistentFlags().IntVar(&maxDigits32, "max-digits-32",
		defaults.MaxDigits32, "most significant digits of a 32-bit sample")
	cmd.PersistentFlags().IntVar(&maxDigits64, "max-digits-64",
		defaults.MaxDigits64, "most significant digits of a 64-bit sample")
	cmd.PersistentFlags().DurationVar(&minDuration, "min-duration",
		defaults.MinDuration, "least wall time spent timing each candidate")
	cmd.PersistentFlags().BoolVar(&run32, "run-32", defaults.Run32, "run the 32-bit suite")
	cmd.PersistentFlags().BoolVar(&run64, "run-64", defaults.Run64, "run the 64-bit suite")
	cmd.PersistentFlags().StringVar(&logLevel, "level", defaults.Logging.Level, "logging level")
	cmd.PersistentFlags().StringVar(&logEncoder, "log-encoder",
		defaults.Logging.Encoder, "log encoder, console or json")
}

var cmd = &cobra.Command{
	Use:   "rtzbench",
	Short: "verify and time trailing-zero removal kernels",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := parseConfig(c.Flags())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err := buildLogger(cfg)
		if err != nil {
			return err
		}
		return run(logger, cfg)
	},
}

// parseConfig layers the optional config file over the defaults and applies
// any flag set on the command line on top.
func parseConfig(flags *pflag.FlagSet) (*config.Config, error) {
	vip := viper.New()
	if err := config.LoadConfig(configPath, vip); err != nil {
		return nil, err
	}
	cfg := config.DefaultConfig()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)
	if err := vip.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if flags.Changed("samples") {
		cfg.Samples = numSamples
	}
	if flags.Changed("max-digits-32") {
		cfg.MaxDigits32 = maxDigits32
	}
	if flags.Changed("max-digits-64") {
		cfg.MaxDigits64 = maxDigits64
	}
	if flags.Changed("min-duration") {
		cfg.MinDuration = minDuration
	}
	if flags.Changed("run-32") {
		cfg.Run32 = run32
	}
	if flags.Changed("run-64") {
		cfg.Run64 = run64
	}
	if flags.Changed("level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-encoder") {
		cfg.Logging.Encoder = logEncoder
	}
	return &cfg, nil
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Logging.Level, err)
	}
	var encoder zapcore.Encoder
	switch cfg.Logging.Encoder {
	case config.JSONLogEncoder:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl)), nil
}

func run(logger *zap.Logger, cfg *config.Config) error {
	rng, err := samples.NewRand()
	if err != nil {
		return fmt.Errorf("seed sample generator: %w", err)
	}

	if cfg.Run32 {
		fmt.Printf("[32-bit benchmark for numbers with at most %d digits]\n\n", cfg.MaxDigits32)
		logger.Info("generating samples",
			zap.Int("count", cfg.Samples),
			zap.Int("maxDigits", cfg.MaxDigits32),
		)
		smpls := samples.Uint32s(rng, cfg.Samples, cfg.MaxDigits32)
		if err := runSuite(logger, cfg, smpls, candidates32()); err != nil {
			return err
		}
	}
	if cfg.Run64 {
		fmt.Printf("[64-bit benchmark for numbers with at most %d digits]\n\n", cfg.MaxDigits64)
		logger.Info("generating samples",
			zap.Int("count", cfg.Samples),
			zap.Int("maxDigits", cfg.MaxDigits64),
		)
		smpls := samples.Uint64s(rng, cfg.Samples, cfg.MaxDigits64)
		if err := runSuite(logger, cfg, smpls, candidates64()); err != nil {
			return err
		}
	}
	return nil
}

func runSuite[T constraints.Unsigned](
	logger *zap.Logger,
	cfg *config.Config,
	smpls []T,
	cands []*bench.Candidate[T],
) error {
	err := bench.Run(logger, bench.Config{MinDuration: cfg.MinDuration}, smpls, cands)
	if err != nil {
		var merr *bench.MismatchError[T]
		if errors.As(err, &merr) {
			fmt.Printf("error detected on sample %d\n", uint64(merr.Sample))
			for _, r := range merr.Results {
				fmt.Printf("    %37s: (%d, %d)\n", r.Name, uint64(r.Trimmed), r.Zeros)
			}
		}
		return err
	}
	for _, c := range cands {
		fmt.Printf("%37s: %.6gns\n", c.Name, c.AvgNs)
	}
	fmt.Print("\n\n")
	return nil
}

func candidates32() []*bench.Candidate[uint32] {
	return []*bench.Candidate[uint32]{
		{Name: "Null (baseline)", Fn: trim.Baseline32},
		{Name: "Naive", Fn: trim.Naive32},
		{Name: "Granlund-Montgomery", Fn: trim.GranlundMontgomery32},
		{Name: "Lemire", Fn: trim.Lemire32},
		{Name: "Generalized Granlund-Montgomery", Fn: trim.GeneralizedGranlundMontgomery32},
		{Name: "Naive 2-1", Fn: trim.Naive32By2},
		{Name: "Granlund-Montgomery 2-1", Fn: trim.GranlundMontgomery32By2},
		{Name: "Lemire 2-1", Fn: trim.Lemire32By2},
		{Name: "Generalized Granlund-Montgomery 2-1", Fn: trim.GeneralizedGranlundMontgomery32By2},
	}
}

func candidates64() []*bench.Candidate[uint64] {
	return []*bench.Candidate[uint64]{
		{Name: "Null (baseline)", Fn: trim.Baseline64},
		{Name: "Naive", Fn: trim.Naive64},
		{Name: "Granlund-Montgomery", Fn: trim.GranlundMontgomery64},
		{Name: "Lemire", Fn: trim.Lemire64},
		{Name: "Generalized Granlund-Montgomery", Fn: trim.GeneralizedGranlundMontgomery64},
		{Name: "Naive 2-1", Fn: trim.Naive64By2},
		{Name: "Granlund-Montgomery 2-1", Fn: trim.GranlundMontgomery64By2},
		{Name: "Lemire 2-1", Fn: trim.Lemire64By2},
		{Name: "Generalized Granlund-Montgomery 2-1", Fn: trim.GeneralizedGranlundMontgomery64By2},
		{Name: "Naive 8-2-1", Fn: trim.Naive64By8},
		{Name: "Granlund-Montgomery 8-2-1", Fn: trim.GranlundMontgomery64By8},
		{Name: "Lemire 8-2-1", Fn: trim.Lemire64By8},
		{Name: "Generalized Granlund-Montgomery 8-2-1", Fn: trim.GeneralizedGranlundMontgomery64By8},
	}
}

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
