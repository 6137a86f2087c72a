package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/x-xyz/swipebid/domain/bid"
	"github.com/x-xyz/swipebid/domain/listing"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Swipe through active listings",
	Long: `Starts an explore session and shows one listing at a time.

Commands read from stdin:
  p, pass        next listing
  b, back        previous listing
  bid <amount>   bid in ETH on the current listing
  r, refresh     reload the listings
  q, quit        close the session`,
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().Int("count", 0, "print this many listings and exit instead of reading commands")
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

	view, err := app.Explore.Start(bgCtx)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Explore.Close(bgCtx, view.SessionId); err != nil {
			fmt.Fprintln(os.Stderr, message(err))
		}
	}()

	if count > 0 {
		for i := 0; i < count && !view.Empty; i++ {
			printView(os.Stdout, view)
			if i+1 == count {
				break
			}
			if view, err = app.Explore.Pass(bgCtx, view.SessionId); err != nil {
				return err
			}
		}
		if view.Empty {
			fmt.Println("no active listings")
		}
		return nil
	}

	printView(os.Stdout, view)
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return in.Err()
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		var next *listing.View
		switch fields[0] {
		case "p", "pass":
			next, err = app.Explore.Pass(bgCtx, view.SessionId)
		case "b", "back":
			next, err = app.Explore.Previous(bgCtx, view.SessionId)
		case "r", "refresh":
			next, err = app.Explore.Refresh(bgCtx, view.SessionId)
		case "bid":
			next, err = exploreBid(view, fields[1:])
		case "q", "quit":
			return nil
		default:
			fmt.Println("unknown command", fields[0])
			continue
		}
		if err != nil {
			fmt.Println(message(err))
			continue
		}
		view = next
		printView(os.Stdout, view)
	}
}

// exploreBid bids on the shown listing and returns the advanced view once the
// bid is confirmed
func exploreBid(view *listing.View, args []string) (*listing.View, error) {
	if view.Listing == nil {
		return nil, fmt.Errorf("nothing to bid on")
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: bid <amount>")
	}
	modal, err := app.Bid.Place(bgCtx, bid.PlaceParams{
		TokenId:   view.Listing.TokenId,
		Amount:    args[0],
		SessionId: view.SessionId,
	})
	if err != nil {
		return nil, err
	}
	printModal(os.Stdout, modal)
	if modal.State != bid.StateConfirmed {
		return view, nil
	}
	return app.Explore.Current(bgCtx, view.SessionId)
}

func printView(w io.Writer, v *listing.View) {
	if v.Unlisted {
		fmt.Fprintf(w, "listing #%s is no longer active, pass or refresh\n", v.TokenId)
		return
	}
	if v.Empty || v.Listing == nil {
		fmt.Fprintln(w, "no active listings")
		return
	}
	if v.Looped {
		fmt.Fprintln(w, "-- seen every listing, starting over --")
	}
	l := v.Listing
	fmt.Fprintf(w, "\n[%d/%d] #%s %s\n", v.Index+1, v.Size, l.TokenId, l.Name)
	fmt.Fprintf(w, "  %s\n", l.Description)
	fmt.Fprintf(w, "  image:  %s\n", l.Image)
	fmt.Fprintf(w, "  seller: %s\n", l.SellerName)
	fmt.Fprintf(w, "  price:  %s ETH (base %s ETH)\n", l.CurrentPrice, l.BasePrice)
	fmt.Fprintf(w, "  %s\n", l.HighestBidInfo)
	printTraits(w, l.Traits)
}

func printTraits(w io.Writer, traits map[string]string) {
	keys := make([]string, 0, len(traits))
	for k := range traits {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if traits[k] == "" {
			fmt.Fprintf(w, "  - %s\n", k)
			continue
		}
		fmt.Fprintf(w, "  - %s: %s\n", k, traits[k])
	}
}

func printModal(w io.Writer, m *bid.Modal) {
	switch m.State {
	case bid.StateConfirmed:
		fmt.Fprintf(w, "bid of %s ETH confirmed, tx %s\n", m.Amount, m.TxHash)
	case bid.StateFailed:
		if m.Field != "" {
			fmt.Fprintf(w, "%s: %s\n", m.Field, m.Error)
			return
		}
		fmt.Fprintf(w, "bid failed: %s\n", m.Error)
	default:
		fmt.Fprintf(w, "bid %s\n", m.State)
	}
}
