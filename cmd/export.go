package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/restodesk/internal/export"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/screens"
)

var exportOpts struct {
	search string
	sort   string
	format string
	dir    string
}

var exportCmd = &cobra.Command{
	Use:   "export <screen>",
	Short: "Write the filtered, sorted list to a file",
	Long: `Export every record matching the search, in sort order, to a CSV, JSON or
YAML file named <screen>-<timestamp>.<ext>.

Examples:
  restodesk export units
  restodesk export customers --search goa --format json --dir /tmp`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: screens.New().Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := screens.New().Get(args[0])
		if err != nil {
			return err
		}
		formatName := exportOpts.format
		if formatName == "" {
			formatName = cfg.Export.Format
		}
		format, err := export.ParseFormat(formatName)
		if err != nil {
			return err
		}
		dir := exportOpts.dir
		if dir == "" {
			dir = cfg.Export.Dir
		}

		env, shutdown, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer shutdown()

		res, err := entry.Query(cmd.Context(), env, screens.Query{
			Term: exportOpts.search,
			Sort: exportOpts.sort,
			All:  true,
		})
		if err != nil {
			return err
		}
		path, err := export.ToFile(dir, entry.Name, format, res.Table, time.Now())
		if err != nil {
			return err
		}
		log.Info(log.CatExport, "exported", "screen", entry.Name, "rows", len(res.Table.Rows), "path", path)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", len(res.Table.Rows), entry.Name, path)
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOpts.search, "search", "s", "", "case-insensitive search term")
	exportCmd.Flags().StringVar(&exportOpts.sort, "sort", "", `sort as "<field>" or "<field> desc"`)
	exportCmd.Flags().StringVarP(&exportOpts.format, "format", "f", "", "csv, json or yaml (default from config)")
	exportCmd.Flags().StringVar(&exportOpts.dir, "dir", "", "output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
