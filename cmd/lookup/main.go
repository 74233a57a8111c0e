// Command lookup resolves a single Rec Room username from the terminal,
// using the same pipeline as the bot's /rec command.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/RecCross_Go/internal/logger"
	"github.com/osse101/RecCross_Go/internal/recnet"
)

type lookupOptions struct {
	json            bool
	debug           bool
	apiURL          string
	siteURL         string
	primaryTimeout  time.Duration
	fallbackTimeout time.Duration
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:          "lookup <username>",
		Short:        "Resolve a Rec Room username to a profile summary",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), args[0], opts, out)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", recnet.DefaultAPIBaseURL, "Profile API base URL")
	cmd.Flags().StringVar(&opts.siteURL, "site-url", recnet.DefaultSiteBaseURL, "rec.net site base URL")
	cmd.Flags().DurationVar(&opts.primaryTimeout, "primary-timeout", recnet.DefaultPrimaryTimeout, "Profile API timeout")
	cmd.Flags().DurationVar(&opts.fallbackTimeout, "fallback-timeout", recnet.DefaultFallbackTimeout, "User page timeout")

	return cmd
}

func runLookup(ctx context.Context, username string, opts *lookupOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.LogLevelWarn
	if opts.debug {
		logCfg.Level = logger.LogLevelDebug
	}
	logger.InitLoggerWithWriter(logCfg, os.Stderr)

	resolver := recnet.NewResolver(recnet.Config{
		APIBaseURL:      opts.apiURL,
		SiteBaseURL:     opts.siteURL,
		PrimaryTimeout:  opts.primaryTimeout,
		FallbackTimeout: opts.fallbackTimeout,
	})

	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	res, err := resolver.Resolve(ctx, username)
	if err != nil {
		res = recnet.Transient(err)
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(struct {
			Outcome string `json:"outcome"`
			recnet.Result
		}{res.Kind.String(), res}); encErr != nil {
			return encErr
		}
	} else {
		printResult(out, username, res)
	}

	return err
}

func printResult(out io.Writer, username string, res recnet.Result) {
	switch res.Kind {
	case recnet.KindAccessDenied:
		fmt.Fprintln(out, "Access denied: rec.net may be blocking requests right now")
		return
	case recnet.KindNotFound:
		fmt.Fprintln(out, "Player not found")
		return
	case recnet.KindTransientError:
		fmt.Fprintf(out, "Error: %s\n", res.Reason)
		return
	}

	source := "rec.net fallback"
	if res.Profile != nil {
		source = "api.rec.net"
	}
	fmt.Fprintf(out, "Source:       %s\n", source)

	if a := res.Account; a != nil {
		if a.Username != "" {
			username = a.Username
		}
		if a.DisplayName != "" {
			fmt.Fprintf(out, "Display name: %s\n", a.DisplayName)
		}
		if a.AccountID != nil {
			fmt.Fprintf(out, "Account ID:   %d\n", *a.AccountID)
		}
		if a.ProfileImage != "" {
			fmt.Fprintf(out, "Image:        %s\n", a.ProfileImage)
		}
	}
	fmt.Fprintf(out, "Username:     %s\n", username)

	if p := res.Profile; p != nil {
		level := recnet.NotAvailable
		if p.Level != nil {
			level = strconv.Itoa(*p.Level)
		}
		platform := p.Platform
		if platform == "" {
			platform = "Unknown"
		}
		fmt.Fprintf(out, "Level:        %s\n", level)
		fmt.Fprintf(out, "Platform:     %s\n", platform)
		fmt.Fprintf(out, "Online:       %t\n", p.IsOnline)
		fmt.Fprintf(out, "Last online:  %s\n", recnet.Humanize(p.LastOnlineAt))
	}
}
