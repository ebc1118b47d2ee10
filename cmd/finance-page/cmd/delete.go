package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/render"
	"github.com/shunichi-ikebuchi/finance-page/pkg/terminal"
)

var deleteYes bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction after confirmation",
	Long: `Load the transactions page and click the delete link of a transaction.

You are asked to confirm first; declining leaves everything unchanged.
The deletion itself is done by the server when the link is followed.

Example:
  finance-page delete 3
  finance-page delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")
}

func runDelete(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	exitOnError(err, "invalid transaction id")

	s := newSession()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var window page.Window = terminal.New(os.Stdin, os.Stdout)
	if deleteYes {
		window = terminal.AutoConfirm{Out: os.Stdout}
	}

	ctrl := s.controller(window)
	exitOnError(ctrl.Start(ctx, s.doc), "failed to start page")
	ctrl.Wait()

	href := render.DeleteHref(id)
	link := s.doc.FindLink(href)
	if link == nil {
		// Not on the page (refresh failed or unknown id); the server decides.
		slog.Warn("Transaction not listed, following delete link anyway", "id", id)
		link = &page.Element{Tag: "a", Href: href, Text: render.DeleteLabel, Classes: []string{page.DeleteTransactionClass}}
		s.doc.Add(link)
	}

	ev, err := s.doc.Click(ctx, link)
	exitOnError(err, "failed to delete transaction")

	if ev.DefaultPrevented() {
		slog.Debug("Delete cancelled", "id", id)
		return
	}

	slog.Info("Transaction deleted", "id", id)
	fmt.Printf("Transaction %d deleted\n", id)
}
