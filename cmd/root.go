package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/sweepcore/director/constraint"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/director/script"
	"github.com/they4kman/sweepcore/game"
)

type options struct {
	seed          int64
	budgetSeconds int
	mineChance    int
	policy        game.GenerationPolicy
	minMines      int
	maxMines      int

	configPath   string
	snapshotPath string
	scriptPath   string
	director     string
	maxFrames    int
	logLevel     string
}

var opts = options{}

var rootCmd = &cobra.Command{
	Use:   "sweepcore",
	Short: "Play a 10x10 Minesweeper board headless",
	Long: `sweepcore runs the 10x10 Minesweeper core without a window. A
director plays the board frame by frame, and the final board is
printed as YAML.

Let the computer play a random board
	sweepcore

Replay a list of moves against a known board
	sweepcore --snapshot board.yaml --script moves.yaml
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildConfig layers defaults, then the config file, then flags the user set
func buildConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := game.NewGameConfig()
	config.Seed = time.Now().UnixNano()

	if opts.configPath != "" {
		file, err := os.Open(opts.configPath)
		if err != nil {
			return config, errors.Wrapf(err, "opening config %s", opts.configPath)
		}
		defer file.Close()

		if err := game.LoadGameConfig(file, &config); err != nil {
			return config, errors.Wrapf(err, "loading config %s", opts.configPath)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		config.Seed = opts.seed
	}
	if flags.Changed("budget") {
		if opts.budgetSeconds <= 0 {
			return config, errors.Errorf("budget must be positive, got %d", opts.budgetSeconds)
		}
		config.Budget = time.Duration(opts.budgetSeconds) * time.Second
	}
	if flags.Changed("mine-chance") {
		if opts.mineChance < 1 {
			return config, errors.Errorf("mine-chance must be at least 1, got %d", opts.mineChance)
		}
		config.Generator.MineChance = opts.mineChance
	}
	if flags.Changed("policy") {
		config.Generator.Policy = opts.policy
	}
	if flags.Changed("min-mines") {
		config.Generator.MinMines = opts.minMines
	}
	if flags.Changed("max-mines") {
		config.Generator.MaxMines = opts.maxMines
	}

	if opts.snapshotPath != "" {
		data, err := ioutil.ReadFile(opts.snapshotPath)
		if err != nil {
			return config, errors.Wrapf(err, "reading snapshot %s", opts.snapshotPath)
		}
		snapshot, err := game.LoadSnapshot(string(data))
		if err != nil {
			return config, errors.Wrapf(err, "loading snapshot %s", opts.snapshotPath)
		}
		config.Snapshot = snapshot
	}

	if opts.scriptPath != "" {
		file, err := os.Open(opts.scriptPath)
		if err != nil {
			return config, errors.Wrapf(err, "opening script %s", opts.scriptPath)
		}
		defer file.Close()

		events, err := game.LoadScript(file)
		if err != nil {
			return config, errors.Wrapf(err, "loading script %s", opts.scriptPath)
		}
		config.Director = script.New(events)
	} else {
		config.Director = directors[opts.director]()
	}

	return config, nil
}

func run(cmd *cobra.Command, out io.Writer) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logger := game.Logger()
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())

	config, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	g, err := game.NewGame(config)
	if err != nil {
		return err
	}

	snapshot := play(g, opts.maxFrames)

	fmt.Fprint(out, snapshot.Serialize())
	fmt.Fprintln(out, snapshot.StatusText())
	return nil
}

// play steps the game until it ends, the director runs out of moves, or
// maxFrames frames have run (no limit if maxFrames <= 0)
func play(g *game.Game, maxFrames int) game.Snapshot {
	snapshot := g.Snapshot()
	for frame := 0; maxFrames <= 0 || frame < maxFrames; frame++ {
		var acted bool
		snapshot, acted = g.Step()
		if snapshot.Status.IsTerminal() || !acted {
			break
		}
	}
	return snapshot
}

var (
	_ pflag.Value = (*directorValue)(nil)
	_ pflag.Value = (*policyValue)(nil)
)

var directors = map[string]func() game.Director{
	"random":     func() game.Director { return &random.Director{} },
	"constraint": func() game.Director { return &constraint.Director{} },
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; isValid {
		*dirVal = directorValue(value)
		return nil
	}
	return fmt.Errorf("invalid director; choose one of %s", strings.Join(directorNames(), ", "))
}

func (dirVal *directorValue) Type() string {
	return "director"
}

func directorNames() []string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type policyValue game.GenerationPolicy

func newPolicyValue(val game.GenerationPolicy, p *game.GenerationPolicy) *policyValue {
	*p = val
	return (*policyValue)(p)
}

func (policyVal *policyValue) String() string {
	return game.GenerationPolicy(*policyVal).String()
}

func (policyVal *policyValue) Set(value string) error {
	if policy, isValid := game.GenerationPolicies[value]; isValid {
		*policyVal = policyValue(policy)
		return nil
	}
	return fmt.Errorf("invalid generation policy")
}

func (policyVal *policyValue) Type() string {
	return "game.GenerationPolicy"
}

func init() {
	defaults := game.NewGameConfig()

	flags := rootCmd.Flags()
	flags.Int64VarP(&opts.seed, "seed", "s", 0, "Seed for the mine layout (default: current time)")
	flags.IntVarP(&opts.budgetSeconds, "budget", "b", int(defaults.Budget/time.Second), "Countdown budget, in seconds")
	flags.IntVarP(&opts.mineChance, "mine-chance", "m", defaults.Generator.MineChance, "Each cell is a mine with probability 1/N")
	flags.Var(newPolicyValue(defaults.Generator.Policy, &opts.policy), "policy", `Generation policy for the mine count.
accept: keep the first layout drawn, even with no mines at all
regenerate: draw again until the count lies within --min-mines and --max-mines`)
	flags.IntVar(&opts.minMines, "min-mines", defaults.Generator.MinMines, "Fewest mines accepted by the regenerate policy")
	flags.IntVar(&opts.maxMines, "max-mines", defaults.Generator.MaxMines, "Most mines accepted by the regenerate policy (0: no limit)")

	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&opts.snapshotPath, "snapshot", "", "YAML board snapshot to take the mine layout from")
	flags.StringVar(&opts.scriptPath, "script", "", "YAML list of events to play, instead of a director")
	flags.VarP(newDirectorValue("constraint", &opts.director), "director", "d", "Computer player: "+strings.Join(directorNames(), ", "))
	flags.IntVar(&opts.maxFrames, "max-frames", 1000, "Stop after this many frames (0: no limit)")
	flags.StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), "Log level: debug, info, warn, error")
}
