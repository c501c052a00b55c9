// Command gitwrapped runs one aggregation from the terminal and renders the
// snapshot as tables
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	gh "gitwrapped/internal/adapters/github"
	"gitwrapped/internal/core/version"
	"gitwrapped/internal/platform/config"
	narrdom "gitwrapped/internal/services/narrative/domain"
	narrmod "gitwrapped/internal/services/narrative/module"
	narrsvc "gitwrapped/internal/services/narrative/service"
	wrappeddom "gitwrapped/internal/services/wrapped/domain"
	wrappedmod "gitwrapped/internal/services/wrapped/module"
	wrappedsvc "gitwrapped/internal/services/wrapped/service"
)

var (
	flagToken   string
	flagJSON    bool
	flagPersona bool
)

var rootCmd = &cobra.Command{
	Use:           "gitwrapped <username>",
	Short:         "Build a yearly GitHub activity snapshot for a user",
	Long:          `Fetches a GitHub user's annual activity, derives streaks, timing, languages and churn, and renders the result. A token switches to the exact authenticated path.`,
	Version:       version.Info().Version,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagToken, "token", "t", "", "GitHub access token (defaults to GITHUB_TOKEN)")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the raw snapshot as JSON")
	rootCmd.Flags().BoolVar(&flagPersona, "persona", false, "also generate a narrative persona")
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	username := args[0]

	root := config.New()
	ghCfg := root.Prefix("GITHUB_")

	token := flagToken
	if token == "" {
		token = ghCfg.MayString("TOKEN", "")
	}

	client := gh.NewClient(gh.Options{
		BaseURL:    ghCfg.MayString("BASE_URL", ""),
		Timeout:    ghCfg.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: ghCfg.MayInt("MAX_RETRIES", 3),
	})

	wcfg := wrappedmod.FromConfig(root)
	svc := wrappedsvc.New(client, wrappedsvc.Config{
		Churn: wrappedsvc.ChurnConfig{
			MaxRepos:   wcfg.ChurnMaxRepos,
			Attempts:   wcfg.ChurnAttempts,
			Delay:      wcfg.ChurnDelay,
			OutlierMax: wcfg.ChurnOutlierMax,
		},
	})

	snap, err := svc.Aggregate(cmd.Context(), username, token)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	render(snap)

	if flagPersona {
		ncfg := narrmod.FromConfig(root)
		gen := narrsvc.New(narrsvc.Config{
			Endpoint: ncfg.Endpoint,
			APIKey:   ncfg.APIKey,
			Timeout:  ncfg.Timeout,
		})
		renderPersona(gen.Generate(cmd.Context(), narrdom.ProjectionOf(snap)))
	}
	return nil
}

func render(s wrappeddom.Snapshot) {
	title := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	name := s.User.Name
	if name == "" {
		name = s.User.Login
	}
	title.Printf("\n%s's year on GitHub\n", name)
	if s.IsExact {
		dim.Println("exact contribution data")
	} else {
		dim.Println("approximated from public events")
	}
	fmt.Println()

	stats := tablewriter.NewWriter(os.Stdout)
	stats.Header([]string{"Commits", "PRs", "Issues", "Stars", "Last 90 days"})
	stats.Append([]string{
		strconv.Itoa(s.Stats.Commits),
		strconv.Itoa(s.Stats.PRs),
		strconv.Itoa(s.Stats.Issues),
		strconv.Itoa(s.Stats.Stars),
		strconv.Itoa(s.Stats.Last90Days),
	})
	stats.Render()

	habits := tablewriter.NewWriter(os.Stdout)
	habits.Header([]string{"Current streak", "Longest streak", "Longest break", "Peak hour", "Weekend", "Weekday"})
	habits.Append([]string{
		strconv.Itoa(s.Streaks.Current),
		strconv.Itoa(s.Streaks.Longest),
		strconv.Itoa(s.Streaks.LongestBreak),
		fmt.Sprintf("%02d:00", s.Timing.PeakHour),
		strconv.Itoa(s.WorkStyle.Weekend),
		strconv.Itoa(s.WorkStyle.Weekday),
	})
	habits.Render()

	if len(s.Languages) > 0 {
		langs := tablewriter.NewWriter(os.Stdout)
		langs.Header([]string{"Language", "Repos", "Share"})
		for _, l := range s.Languages {
			langs.Append([]string{l.Name, strconv.Itoa(l.Count), strconv.Itoa(l.Percent) + "%"})
		}
		langs.Render()
	}

	churn := fmt.Sprintf("+%d / -%d lines this year", s.CodeStats.Additions, s.CodeStats.Deletions)
	if s.CodeStats.Estimated {
		churn += " (estimated)"
	}
	fmt.Println(churn)

	if s.MostProductiveDay.Count > 0 {
		fmt.Printf("busiest day: %s with %d contributions\n", s.MostProductiveDay.Date, s.MostProductiveDay.Count)
	}
}

func renderPersona(p narrdom.Persona) {
	head := color.New(color.FgMagenta, color.Bold)
	head.Printf("\n%s [%s, %s]\n", p.Title, p.DisciplineLevel, p.Vibe)
	fmt.Println(p.Remarks)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
