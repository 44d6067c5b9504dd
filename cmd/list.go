package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/restodesk/internal/presentation"
	"github.com/zjrosen/restodesk/internal/screens"
)

var listOpts struct {
	search   string
	sort     string
	page     int
	pageSize int
	all      bool
	json     bool
}

var listCmd = &cobra.Command{
	Use:   "list <screen>",
	Short: "Print one page of a master list",
	Long: `Fetch a master list once and print it through the same search, sort and
paging rules the interactive screen uses.

Examples:
  restodesk list units
  restodesk list customers --search pune --sort "name desc"
  restodesk list tables --page 2 --page-size 20
  restodesk list ledgers --all --json | jq '.rows[][1]'`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: screens.New().Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := screens.New().Get(args[0])
		if err != nil {
			return err
		}
		env, shutdown, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		res, err := entry.Query(cmd.Context(), env, screens.Query{
			Term:     listOpts.search,
			Sort:     listOpts.sort,
			Page:     listOpts.page,
			PageSize: listOpts.pageSize,
			All:      listOpts.all,
		})
		if err != nil {
			return err
		}

		page := presentation.FromResult(entry.Name, listOpts.search, res)
		f := presentation.NewFormatter(cmd.OutOrStdout())
		if listOpts.json {
			return f.FormatJSON(page)
		}
		return f.FormatPage(page)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.search, "search", "s", "", "case-insensitive search term")
	listCmd.Flags().StringVar(&listOpts.sort, "sort", "", `sort as "<field>" or "<field> desc"`)
	listCmd.Flags().IntVarP(&listOpts.page, "page", "p", 1, "page number, starting at 1")
	listCmd.Flags().IntVar(&listOpts.pageSize, "page-size", 0, "rows per page (default from config)")
	listCmd.Flags().BoolVar(&listOpts.all, "all", false, "print every matching row")
	listCmd.Flags().BoolVar(&listOpts.json, "json", false, "print JSON")
	rootCmd.AddCommand(listCmd)
}
