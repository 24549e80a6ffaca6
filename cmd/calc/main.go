package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/calc/internal/config"
)

// errFailed indicates that at least one expression didn't evaluate. The
// failures have already been printed.
var errFailed = errors.New("some expressions failed")

// app holds the state shared by all commands.
type app struct {
	cfgPath string
	verbose bool

	// Root command flags. They override the config file when set.
	inname  string
	format  string
	lines   bool
	echo    bool
	workers int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate four-function arithmetic expressions",
		Long: `calc evaluates infix expressions of decimal numbers and the operators
+, -, × and ÷. × and ÷ bind more tightly than + and -, and operators of equal
precedence group from the left. Anything else in an expression is ignored.

Each argument is one expression. With no arguments, calc reads stdin, or the
file named by --in. The whole input is one expression unless --lines is given.

Examples:
  calc '2+3×4'
  calc --echo '8-3-2' '1.5 + 2.5'
  printf '1+1\n2×3\n' | calc -n`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, true)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runEval,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", config.DefaultPath(), "config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	f := root.Flags()
	f.StringVar(&a.inname, "in", "", "input file, - for stdin (default stdin if no args given)")
	f.StringVar(&a.format, "fmt", "%g", "result formatting string")
	f.BoolVarP(&a.lines, "lines", "n", false, "evaluate separate input lines as separate expressions")
	f.BoolVar(&a.echo, "echo", false, "print the postfix form of each expression")
	f.IntVarP(&a.workers, "workers", "j", 0, "number of expressions to evaluate in parallel, 0 for GOMAXPROCS")

	root.AddCommand(newRPNCmd(), newKeypadCmd(a), newConfigCmd(a))
	return root
}

// setup loads the config, applies flag overrides, and creates the logger.
// Without validate, an unusable config is kept as is and an unknown log level
// falls back to info.
func (a *app) setup(cmd *cobra.Command, validate bool) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("fmt") {
		cfg.Format = a.format
	}
	if flags.Changed("lines") {
		cfg.Lines = a.lines
	}
	if flags.Changed("echo") {
		cfg.Echo = a.echo
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
		if cfg.Workers <= 0 {
			cfg.Workers = runtime.GOMAXPROCS(0)
		}
	}
	if a.verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if validate {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	lvl, err := cfg.Level()
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	logger, err := newLogger(lvl, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// newLogger builds a production logger at the given level, writing to paths
// or to w if there are none.
func newLogger(lvl zapcore.Level, w io.Writer, paths ...string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	var opts []zap.Option
	if len(paths) > 0 {
		zc.OutputPaths = paths
		zc.ErrorOutputPaths = paths
	} else {
		ws := zapcore.Lock(zapcore.AddSync(w))
		opts = append(opts,
			zap.WrapCore(func(zapcore.Core) zapcore.Core {
				return zapcore.NewCore(zapcore.NewJSONEncoder(zc.EncoderConfig), ws, zc.Level)
			}),
			zap.ErrorOutput(ws),
		)
	}
	logger, err := zc.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "calc:", err)
		}
		stop()
		os.Exit(1)
	}
}
