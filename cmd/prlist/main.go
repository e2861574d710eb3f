package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mishasvintus/pr_range_explorer/internal/browse"
	"github.com/mishasvintus/pr_range_explorer/internal/domain"
	"github.com/mishasvintus/pr_range_explorer/internal/proxyclient"
)

// CLI is the prlist command line.
type CLI struct {
	Server  string        `help:"Base URL of the pull request server." default:"http://localhost:3000" env:"PRLIST_SERVER"`
	Owner   string        `help:"Repository owner." required:""`
	Repo    string        `help:"Repository name." required:""`
	Start   string        `help:"Start of the activity range (YYYY-MM-DD)." required:""`
	End     string        `help:"End of the activity range (YYYY-MM-DD), inclusive." required:""`
	State   string        `help:"Show only pull requests in this state." enum:"all,open,closed" default:"all"`
	From    string        `help:"Only pull requests created on or after this date (needs --to)."`
	To      string        `help:"Only pull requests created on or before this date (needs --from)."`
	Page    int           `help:"Page to show." default:"1"`
	Token   string        `help:"GitHub token forwarded to the server." env:"PRLIST_TOKEN"`
	Timeout time.Duration `help:"Request timeout." default:"60s"`
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if _, err := domain.NewDateRange(c.Start, c.End); err != nil {
		return err
	}
	if (c.From == "") != (c.To == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if c.From != "" {
		if _, err := domain.NewDateRange(c.From, c.To); err != nil {
			return err
		}
	}
	return nil
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("prlist"),
		kong.Description("List the pull requests of a repository active in a date range."),
		kong.UsageOnError(),
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	kctx.FatalIfErrorf(run(ctx, &cli, os.Stdout))
}

func run(ctx context.Context, cli *CLI, out io.Writer) error {
	client, err := proxyclient.New(cli.Server, nil)
	if err != nil {
		return err
	}

	prs, err := client.Fetch(ctx, proxyclient.Query{
		Owner:     cli.Owner,
		Repo:      cli.Repo,
		StartDate: cli.Start,
		EndDate:   cli.End,
		Token:     cli.Token,
	})
	if err != nil {
		return err
	}

	s := browse.Reduce(browse.NewState(), browse.Loaded{PRs: prs})
	s = browse.Reduce(s, browse.SetStateFilter{Filter: browse.StateFilter(cli.State)})
	s = browse.Reduce(s, browse.SetDateFilter{From: cli.From, To: cli.To})
	s = browse.Reduce(s, browse.GoToPage{Page: cli.Page})

	return render(out, cli.Owner+"/"+cli.Repo, browse.View(s))
}

func render(out io.Writer, repo string, v browse.PageView) error {
	fmt.Fprintf(out, "Pull requests for %s\n\n", repo)

	if v.Empty {
		fmt.Fprintln(out, browse.NoResultsMessage)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tSTATE\tCREATED\tTITLE")
	for _, pr := range v.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", pr.ID, pr.User, pr.State, pr.CreatedAt, pr.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if v.ShowPagination() {
		fmt.Fprintf(out, "\npage %d/%d (%d pull requests)\n", v.Page, v.TotalPages, v.Total)
	} else {
		fmt.Fprintf(out, "\n%d pull requests\n", v.Total)
	}
	return nil
}
