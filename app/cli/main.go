package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/x-xyz/swipebid/app/bootstrap"
	"github.com/x-xyz/swipebid/base/ctx"
)

var (
	configPath string
	app        *bootstrap.App
	bgCtx      = ctx.Background()
)

var rootCmd = &cobra.Command{
	Use:   "swipebid",
	Short: "SwipeBid marketplace CLI",
	Long:  "Browse listings, bid, end auctions and mint NFTs on the SwipeBid marketplace contract.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap.LoadConfig(configPath); err != nil {
			return err
		}
		a, err := bootstrap.New(bgCtx)
		if err != nil {
			return err
		}
		app = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.Close()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "infra/configs/config.yaml", "path to the yaml config")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		os.Exit(1)
	}
}

func printJson(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
