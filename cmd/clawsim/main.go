// clawsim 在没有窗口的情况下运行抓娃娃机，用于调参和回归检查
//
// 用法：
//
//	go run ./cmd/clawsim run --seed 1 --attempts 10
//	go run ./cmd/clawsim field --seed 1
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/funclaw/pkg/config"
)

var (
	configPath string
	seed       uint64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "clawsim",
	Short: "Headless claw machine simulator",
	Long:  `Run the claw machine controller without a window, at a fixed 60 ticks per second.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Claw config YAML file (default: built-in values)")
	rootCmd.PersistentFlags().Uint64VarP(&seed, "seed", "s", 1, "Random seed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// loadConfig 读取 --config 指定的文件，未指定时使用默认配置
func loadConfig() (*config.ClawConfig, error) {
	if configPath == "" {
		return config.DefaultClawConfig(), nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}
	return config.ParseClawConfig(data)
}

// newRand 以种子创建确定性随机源
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
