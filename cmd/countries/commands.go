package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"countries-app-api/core/source"
	logruslogger "countries-app-api/infrastructure/logger/logrus"
	"countries-app-api/pkg/countries"
)

var exampleUsage = strings.TrimSpace(`
  countries list --query "south" --page 2
  countries show DEU
`)

// rootOptions are shared by every subcommand
type rootOptions struct {
	endpoint string
	locale   string
	logLevel string
	timeout  time.Duration
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "countries",
		Short:         "Browse and search the countries of the world",
		Example:       exampleUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.endpoint, "endpoint", source.DefaultEndpoint, "URL returning the country list")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "und", "BCP 47 locale used to order names")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "time allowed for loading")

	root.AddCommand(newListCmd(opts), newShowCmd(opts))
	return root
}

// load builds a client and fetches the collection once
func (o *rootOptions) load(cmd *cobra.Command, pageSize int) (*countries.Client, error) {
	logger := logruslogger.New(logruslogger.Options{
		Level:  o.logLevel,
		Format: "text",
		Output: cmd.ErrOrStderr(),
	})

	clientOpts := []countries.Option{
		countries.WithEndpoint(o.endpoint),
		countries.WithLocale(o.locale),
		countries.WithLogger(logger),
	}
	if pageSize > 0 {
		clientOpts = append(clientOpts, countries.WithPageSize(pageSize))
	}

	client, err := countries.NewClient(clientOpts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	if err := client.Load(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("load countries: %w", err)
	}
	return client, nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		query    string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of countries, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageSize < 1 {
				return fmt.Errorf("--page-size must be at least 1")
			}

			client, err := opts.load(cmd, pageSize)
			if err != nil {
				return err
			}
			defer client.Close()

			result := client.Search(query, page)
			printPage(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name, region, or capital")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, clamped to the last page")
	cmd.Flags().IntVar(&pageSize, "page-size", 15, "countries per page")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show a single country by alpha-2 or alpha-3 code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.load(cmd, 0)
			if err != nil {
				return err
			}
			defer client.Close()

			c, err := client.Country(args[0])
			if err != nil {
				if countries.IsErrorType(err, countries.ErrorTypeNotFound) {
					return fmt.Errorf("no country with code %q", args[0])
				}
				return err
			}
			printCountry(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func printPage(w io.Writer, p countries.Page) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tREGION\tCAPITAL\tPOPULATION")
	for i := range p.Countries {
		c := &p.Countries[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.Code(), c.Name.Common, c.Region, strings.Join(c.Capital, ", "), formatPopulation(c.Population))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPage %d of %d (%d countries)\n", p.Page, p.TotalPages, p.Total)
}

func printCountry(w io.Writer, c countries.Country) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", c.Name.Common)
	if c.Name.Official != "" {
		fmt.Fprintf(tw, "Official name:\t%s\n", c.Name.Official)
	}
	fmt.Fprintf(tw, "Codes:\t%s / %s\n", c.CCA2, c.CCA3)
	fmt.Fprintf(tw, "Region:\t%s\n", c.Region)
	fmt.Fprintf(tw, "Capital:\t%s\n", strings.Join(c.Capital, ", "))
	fmt.Fprintf(tw, "Population:\t%s\n", formatPopulation(c.Population))
	if c.Flags.PNG != "" {
		fmt.Fprintf(tw, "Flag:\t%s\n", c.Flags.PNG)
	}
	tw.Flush()
}

// formatPopulation groups digits in threes, e.g. 83240525 -> 83,240,525
func formatPopulation(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
