package main

import (
	"github.com/spf13/cobra"

	"github.com/x-xyz/swipebid/domain"
)

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Owner and won listings",
}

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Active listings sold by an address, the wallet by default",
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := accountFlag(cmd)
		if err != nil {
			return err
		}
		ls, err := app.Listing.OwnerListings(bgCtx, address)
		if err != nil {
			return err
		}
		return printJson(ls)
	},
}

var wonCmd = &cobra.Command{
	Use:   "won",
	Short: "NFTs won by an address, the wallet by default",
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := accountFlag(cmd)
		if err != nil {
			return err
		}
		ls, err := app.Listing.WonListings(bgCtx, address)
		if err != nil {
			return err
		}
		return printJson(ls)
	},
}

func init() {
	listingsCmd.PersistentFlags().String("address", "", "account address")
	listingsCmd.AddCommand(ownerCmd, wonCmd)
	rootCmd.AddCommand(listingsCmd)
}

func accountFlag(cmd *cobra.Command) (domain.Address, error) {
	if v, _ := cmd.Flags().GetString("address"); v != "" {
		return domain.Address(v), nil
	}
	return app.Wallet.Address()
}
