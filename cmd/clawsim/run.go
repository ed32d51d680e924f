package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/decker502/funclaw/pkg/claw"
	"github.com/decker502/funclaw/pkg/config"
)

// tickRate 模拟帧率
const tickRate = 60

var (
	attempts int
	interval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a number of catch attempts and report the score",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		result, err := simulate(cfg, simOptions{Seed: seed, Attempts: attempts, Interval: interval}, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "round %s: %d/%d caught in %s\n", result.RoundID, result.Score, result.Attempts, result.Elapsed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&attempts, "attempts", "n", 10, "Number of catch attempts")
	runCmd.Flags().DurationVarP(&interval, "interval", "i", 500*time.Millisecond, "Patrol time between attempts")
}

// simOptions 模拟参数
type simOptions struct {
	Seed     uint64
	Attempts int
	Interval time.Duration
}

// simResult 模拟结果
type simResult struct {
	RoundID  string
	Attempts int
	Score    int
	Elapsed  time.Duration
	Session  claw.Session
}

// simulate 以固定帧率驱动控制器，每次回到巡航并等待 Interval 后发起抓取
// 每次抓取的结果写入 out
func simulate(cfg *config.ClawConfig, opts simOptions, out io.Writer) (simResult, error) {
	if opts.Attempts <= 0 {
		return simResult{}, fmt.Errorf("attempts must be positive, got %d", opts.Attempts)
	}

	clawOpts := claw.OptionsFromConfig(cfg)
	clawOpts.Rand = newRand(opts.Seed)
	clawOpts.Feedback = claw.FeedbackFunc(func(cue claw.Cue) error {
		log.Printf("[ClawSim] cue: %s", cue)
		return nil
	})

	c := claw.NewController(clawOpts)
	defer c.Close()

	const dt = 1.0 / tickRate
	timing := clawOpts.Timing
	// 每次抓取最多耗时：等待 + 下降 + 上升，另加一秒余量
	perAttempt := opts.Interval + timing.Descend + timing.Ascend + time.Second
	maxTicks := int(perAttempt.Seconds()*tickRate) * opts.Attempts

	var (
		done       int
		idle       float64
		lastScore  int
		inProgress bool
		ticks      int
	)
	for ; ticks < maxTicks && done < opts.Attempts; ticks++ {
		c.Update(dt)

		if c.Phase() != claw.PhasePatrolling {
			continue
		}

		if inProgress {
			inProgress = false
			done++
			snap := c.Snapshot()
			outcome := "missed"
			if snap.Score > lastScore {
				outcome = "caught"
			}
			lastScore = snap.Score
			fmt.Fprintf(out, "attempt %d: %s at x=%.1f (score %d, %d left)\n", done, outcome, snap.Claw.HorizontalPosition, snap.Score, snap.Remaining())
			idle = 0
			continue
		}

		idle += dt
		if idle >= opts.Interval.Seconds() && c.Catch() {
			inProgress = true
		}
	}

	if done < opts.Attempts {
		return simResult{}, fmt.Errorf("simulation stalled after %d of %d attempts", done, opts.Attempts)
	}

	snap := c.Snapshot()
	return simResult{
		RoundID:  snap.RoundID.String(),
		Attempts: done,
		Score:    snap.Score,
		Elapsed:  time.Duration(float64(ticks) / tickRate * float64(time.Second)),
		Session:  snap,
	}, nil
}
