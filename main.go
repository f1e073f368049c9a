package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/samuelfneumann/pointmass/agent"
	"github.com/samuelfneumann/pointmass/environment/envconfig"
	"github.com/samuelfneumann/pointmass/environment/pointmass"
	"github.com/samuelfneumann/pointmass/experiment"
	"github.com/samuelfneumann/pointmass/experiment/tracker"
	"github.com/spf13/cobra"
)

// runFlags holds the command line flags of the run command
type runFlags struct {
	task             int
	scores           []float64
	goalRange        float64
	rewardRange      float64
	terminalTimestep int
	initRandom       bool
	discount         float64
	seed             uint64
	policy           string
	action           []float64
	steps            uint
	out              string
}

func main() {
	logger := log.New(os.Stderr, "pointmass: ", log.LstdFlags)

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal(err)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pointmass",
		Short:         "2D point mass goal reaching environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var flags runFlags
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a fixed policy on the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), logger, flags)
		},
	}
	runCmd.Flags().IntVar(&flags.task, "task", 0, "task index")
	runCmd.Flags().Float64SliceVar(&flags.scores, "scores", nil,
		"task scores, the highest scoring task is selected (overrides --task)")
	runCmd.Flags().Float64Var(&flags.goalRange, "goal-range",
		pointmass.DefaultGoalRange, "distance at which the goal is reached")
	runCmd.Flags().Float64Var(&flags.rewardRange, "reward-range",
		pointmass.DefaultRewardRange, "distance within which rewards are shaped")
	runCmd.Flags().IntVar(&flags.terminalTimestep, "terminal-timestep",
		pointmass.DefaultTerminalTimestep, "episode step limit")
	runCmd.Flags().BoolVar(&flags.initRandom, "init-random", false,
		"start episodes at random reflections of the goal")
	runCmd.Flags().Float64Var(&flags.discount, "discount",
		envconfig.DefaultDiscount, "discount factor")
	runCmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed")
	runCmd.Flags().StringVar(&flags.policy, "policy", "constant",
		"policy to run: constant or uniform")
	runCmd.Flags().Float64SliceVar(&flags.action, "action",
		[]float64{0.9, 0}, "action of the constant policy")
	runCmd.Flags().UintVar(&flags.steps, "steps", 20, "total steps to run")
	runCmd.Flags().StringVar(&flags.out, "out", "",
		"directory to save episode data in")

	var configTask int
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the default environment configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := envconfig.DefaultConfig(pointmass.Index(configTask)).YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	configCmd.Flags().IntVar(&configTask, "task", 0, "task index")

	rootCmd.AddCommand(runCmd, configCmd)
	return rootCmd
}

// config converts the run flags to an environment configuration
func (f runFlags) config() envconfig.Config {
	id := pointmass.Index(f.task)
	if len(f.scores) > 0 {
		id = pointmass.Scores(f.scores...)
	}

	cfg := envconfig.DefaultConfig(id)
	cfg.GoalRange = f.goalRange
	cfg.RewardRange = f.rewardRange
	cfg.TerminalTimestep = f.terminalTimestep
	cfg.InitRandom = f.initRandom
	cfg.Discount = f.discount
	cfg.Seed = f.seed

	return cfg
}

// newPolicy returns the policy named by the run flags
func (f runFlags) newPolicy(env *pointmass.PointMass) (agent.Policy, error) {
	switch f.policy {
	case "constant":
		if len(f.action) != pointmass.ActionDims {
			return nil, fmt.Errorf("newPolicy: constant action should have "+
				"%v components, have %v", pointmass.ActionDims, len(f.action))
		}
		return agent.NewConstant(f.action), nil

	case "uniform":
		return agent.NewUniform(env.ActionSpec(), f.seed)
	}

	return nil, fmt.Errorf("newPolicy: no such policy %q", f.policy)
}

func run(ctx context.Context, logger *log.Logger, f runFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cfg := f.config()
	env, _, err := cfg.Create()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Printf("config  |  %v", cfg)
	logger.Printf("%v", env)

	policy, err := f.newPolicy(env)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	exp := experiment.NewOnline(env, policy, f.steps, tracker.NewLogger(logger))

	var returns *tracker.Return
	if f.out != "" {
		if err := os.MkdirAll(f.out, 0o755); err != nil {
			return fmt.Errorf("run: could not create output directory: %w", err)
		}

		runID := uuid.NewString()
		prefix := filepath.Join(f.out, runID)
		returns = tracker.NewReturn(prefix + "-return.bin")
		exp.Register(returns)
		exp.Register(tracker.NewEpisodeLength(prefix + "-length.bin"))
		exp.Register(tracker.NewEndCount(prefix + "-ends.bin"))

		logger.Printf("run %v  |  saving episode data in %v", runID, f.out)
	}

	if err := exp.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Printf("finished %v steps  |  last info: %+v", exp.Steps(),
		env.Info())

	if err := exp.Save(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if returns != nil {
		logger.Printf("saved %v episode returns", len(returns.Returns()))
	}
	return nil
}
