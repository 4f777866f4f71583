package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/flipside-id/flipside/internal/cli"
	"github.com/flipside-id/flipside/internal/config"
	"github.com/flipside-id/flipside/internal/fetch"
	"github.com/flipside-id/flipside/internal/format"
	"github.com/flipside-id/flipside/internal/model"
	"github.com/flipside-id/flipside/internal/store"
	"github.com/flipside-id/flipside/internal/viewmodel"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and print the transaction list",
		Long: `Fetch the transaction list once and print it, filtered and sorted the
same way the interactive browser would.`,
		RunE: runList,
	}

	cmd.Flags().StringP("query", "q", "", "filter by name, bank, or amount")
	cmd.Flags().String("sort", "none", "sort order (none, nameAZ, nameZA, dateNewest, dateOldest)")

	_ = viper.BindPFlag("list.query", cmd.Flags().Lookup("query"))
	_ = viper.BindPFlag("list.sort", cmd.Flags().Lookup("sort"))

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s := store.New()
	s.SetQuery(viper.GetString("list.query"))
	s.SetSortOption(viewmodel.ParseSortOption(viper.GetString("list.sort")))

	client := fetch.NewClient(cfg.EndpointURL, cfg.Timeout)
	token := s.BeginLoad()
	collection, err := client.Fetch(cmd.Context())
	if err != nil {
		s.LoadFailed(token, err.Error())
		return err
	}
	s.LoadSucceeded(token, collection)

	snap := s.Snapshot()
	presented := viewmodel.Present(snap.Transactions, snap.Query, snap.Sort)

	if len(presented) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transaction data available"))
		return nil
	}

	printTransactionTable(presented)
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transaksi", len(presented))))
	return nil
}

func printTransactionTable(txns []model.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, cli.BoldStyle.Render("ID\tDARI\tKE\tPENERIMA\tNOMINAL\tTANGGAL\tSTATUS"))
	for _, txn := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			txn.ID,
			format.BankName(txn.SenderBank),
			format.BankName(txn.BeneficiaryBank),
			strings.ToUpper(txn.BeneficiaryName),
			format.Rupiah(txn.Amount),
			format.DateOrRaw(txn.CreatedAt),
			statusCell(txn.Status),
		)
	}
	_ = w.Flush()
}

func statusCell(status string) string {
	label := format.StatusLabel(status)
	switch model.ParseStatus(status) {
	case model.StatusSuccess:
		return cli.SuccessStyle.Render(label)
	case model.StatusPending:
		return cli.ErrorStyle.Render(label)
	default:
		return cli.SubtleStyle.Render(label)
	}
}
