package main

import (
	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/newsfeed/internal/config"
	"github.com/Adda-Baaj/newsfeed/internal/connectivity"
	"github.com/Adda-Baaj/newsfeed/internal/loader"
	"github.com/Adda-Baaj/newsfeed/internal/logger"
	"github.com/Adda-Baaj/newsfeed/internal/preferences"
	"github.com/Adda-Baaj/newsfeed/internal/ui"
	"github.com/Adda-Baaj/newsfeed/pkg/httpclient"
	"github.com/Adda-Baaj/newsfeed/pkg/providers"
)

type rootFlags struct {
	configPath  string
	format      string
	interactive bool
}

// app bundles what every command needs. close must be called when done.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	prefs *preferences.Store
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	prefs, err := preferences.Open(cfg.Preferences.Path)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, prefs: prefs}, nil
}

func (a *app) close() {
	a.prefs.Close()
	a.log.Sync()
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "newsfeed",
		Short:         "Read the latest Guardian articles matching your saved search",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	addListFlags(root, flags)

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the news feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}
	addListFlags(list, flags)

	root.AddCommand(list, newSettingsCmd(flags))
	return root
}

func addListFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVarP(&flags.format, "format", "f", ui.FormatTable, "output format: table, json or yaml")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "prompt for rows to open in the browser")
}

func runList(cmd *cobra.Command, flags *rootFlags) error {
	a, err := newApp(flags.configPath)
	if err != nil {
		return err
	}
	defer a.close()

	renderer, err := ui.NewRenderer(flags.format, a.log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	provider := a.cfg.Provider()

	prefs, err := a.prefs.Get()
	if err != nil {
		return err
	}

	queryURL, err := providers.BuildQueryURL(provider, providers.Query{
		Keywords: prefs.SearchKeywords,
		OrderBy:  prefs.OrderBy,
	})
	if err != nil {
		a.log.ErrorObj("cannot build query url", "query_error", map[string]any{
			"provider_id": provider.ID,
			"error":       err.Error(),
		})
		queryURL = ""
	}

	var checker connectivity.Checker = connectivity.Static(true)
	if dc, err := connectivity.NewDialChecker(a.cfg.API.BaseURL, a.cfg.Connectivity.Timeout, a.log); err == nil {
		checker = dc
	}

	client := httpclient.NewRestyClient(httpclient.Options{
		ConnectTimeout: a.cfg.HTTP.ConnectTimeout,
		ReadTimeout:    a.cfg.HTTP.ReadTimeout,
		UserAgent:      a.cfg.HTTP.UserAgent,
	})
	fetcher := providers.NewGuardianFetcher(client, provider, a.log)
	ld := loader.New(queryURL, fetcher, a.log)

	screen := ui.NewNewsScreen(checker, ld, renderer, ui.BrowserOpener{}, cmd.OutOrStdout(), a.log)
	if err := screen.Show(ctx); err != nil {
		return err
	}
	if flags.interactive {
		return screen.Interact(ctx, cmd.InOrStdin())
	}
	return nil
}

func newSettingsCmd(flags *rootFlags) *cobra.Command {
	settings := &cobra.Command{
		Use:   "settings",
		Short: "Show saved search preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(flags.configPath)
			if err != nil {
				return err
			}
			defer a.close()
			return ui.NewSettingsScreen(a.prefs, cmd.OutOrStdout()).Show()
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a preference (keywords, order-by)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags.configPath)
			if err != nil {
				return err
			}
			defer a.close()
			return ui.NewSettingsScreen(a.prefs, cmd.OutOrStdout()).Change(args[0], args[1])
		},
	}

	settings.AddCommand(set)
	return settings
}
