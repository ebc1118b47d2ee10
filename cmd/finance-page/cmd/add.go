package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/terminal"
)

var (
	addDescription string
	addAmount      string
	addCategory    string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Long: `Fill in the transaction form and submit it to the finance tracker.

Submission is blocked while the description or the amount is empty
(whitespace counts as empty). The amount is sent as typed; the server
decides whether it is a valid number.

Example:
  finance-page add --description Coffee --amount 4.5 --category Food`,
	Args: cobra.NoArgs,
	Run:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "Transaction description")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Transaction amount")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Transaction category")
}

func runAdd(cmd *cobra.Command, args []string) {
	s := newSession()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl := s.controller(terminal.New(os.Stdin, os.Stdout))
	exitOnError(ctrl.Init(s.doc), "failed to initialize page")

	for id, value := range map[string]string{
		page.DescriptionFieldID: addDescription,
		page.AmountFieldID:      addAmount,
		page.CategoryFieldID:    addCategory,
	} {
		exitOnError(s.doc.SetValue(id, value), "failed to fill form")
	}

	ev, err := s.doc.Submit(ctx, page.TransactionFormID)
	exitOnError(err, "failed to submit transaction")

	if ev.DefaultPrevented() {
		slog.Debug("Submission cancelled by form validation")
		os.Exit(1)
	}

	slog.Info("Transaction submitted", "description", addDescription, "amount", addAmount)
	fmt.Println("Transaction submitted")
}
