package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/bid"
)

var bidCmd = &cobra.Command{
	Use:   "bid [tokenId] [amount]",
	Short: "Bid an amount in ETH on an active listing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		modal, err := app.Bid.Place(bgCtx, bid.PlaceParams{
			TokenId: domain.TokenId(args[0]),
			Amount:  args[1],
		})
		if err != nil {
			return err
		}
		printModal(os.Stdout, modal)
		return nil
	},
}

var endCmd = &cobra.Command{
	Use:   "end [tokenId]",
	Short: "End bidding on one of your listings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenId := domain.TokenId(args[0])
		hash, err := app.Listing.EndBidding(bgCtx, tokenId)
		if err != nil {
			return err
		}
		res := map[string]interface{}{
			"tokenId": tokenId,
			"txHash":  hash,
		}
		if wait, _ := cmd.Flags().GetBool("wait"); wait {
			tc, cancel := ctx.WithTimeout(bgCtx, viper.GetDuration("tx.timeout"))
			defer cancel()
			if err := app.Contract.WaitMined(tc, hash); err != nil {
				return err
			}
			res["confirmed"] = true
		}
		return printJson(res)
	},
}

func init() {
	endCmd.Flags().Bool("wait", true, "wait for the transaction to resolve")
	rootCmd.AddCommand(bidCmd, endCmd)
}
