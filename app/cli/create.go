package main

import (
	"io/ioutil"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/x-xyz/swipebid/domain/nft"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Pin an image and its metadata to IPFS and mint it as a new listing",
	Example: `  swipebid create --name Sunset --description "a warm sunset over the bay" \
    --price 0.5 --trait Color:Orange --trait Rare --image ./sunset.png`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().String("name", "", "NFT name, at least 3 characters")
	createCmd.Flags().String("description", "", "NFT description, at least 10 characters")
	createCmd.Flags().String("price", "", "base price in ETH")
	createCmd.Flags().StringSlice("trait", nil, "key:value trait, repeatable or comma separated")
	createCmd.Flags().String("image", "", "path to a png, jpeg or gif")
	createCmd.MarkFlagRequired("image")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	price, _ := cmd.Flags().GetString("price")
	traits, _ := cmd.Flags().GetStringSlice("trait")
	path, _ := cmd.Flags().GetString("image")

	image, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	created, err := app.Nft.Create(bgCtx, nft.CreateParams{
		Name:        name,
		Description: description,
		Traits:      nft.ParseTraits(traits...),
		BasePrice:   price,
		Image:       image,
		FileName:    filepath.Base(path),
	})
	if err != nil {
		return err
	}
	return printJson(created)
}
