package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/render"
	"github.com/shunichi-ikebuchi/finance-page/pkg/terminal"
)

var listHTML bool

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long: `Load the transactions page and print the transactions table once
the background refresh from /api/transactions has finished.

A failed refresh leaves the table empty; the error is logged.

Example:
  finance-page list
  finance-page list --html`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listHTML, "html", false, "print the table body as HTML")
}

func runList(cmd *cobra.Command, args []string) {
	s := newSession()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl := s.controller(terminal.New(os.Stdin, os.Stdout))
	exitOnError(ctrl.Start(ctx, s.doc), "failed to start page")
	ctrl.Wait()

	rows := s.doc.TableBody(page.TransactionsTableBody).Rows()

	if listHTML {
		h, err := render.NewHTMLRenderer()
		exitOnError(err, "failed to create HTML renderer")

		out, err := h.TableBody(rows)
		exitOnError(err, "failed to render table")
		fmt.Print(out)
		return
	}

	printTable(rows)
}

func printTable(rows []page.Row) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESCRIPTION\tCATEGORY\tAMOUNT\tDATE\tACTIONS")

	for _, row := range rows {
		links := make([]string, 0, len(row.Links))
		for _, link := range row.Links {
			links = append(links, link.Href)
		}
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(row.Cells, "\t"), strings.Join(links, " "))
	}

	w.Flush()

	if len(rows) == 0 {
		fmt.Println("(no transactions)")
	}
}
