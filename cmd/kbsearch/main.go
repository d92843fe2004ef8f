// Copyright 2025 Lumawell
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lumawell/kbsearch"
	"github.com/lumawell/kbsearch/core"
)

func main() {
	app := &cli.App{
		Name:  "kbsearch",
		Usage: "Hybrid knowledge-base retrieval engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   "kbsearch.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Rank knowledge-base fragments for a query",
				ArgsUsage: "<query words...>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   3,
					},
				},
			},
			{
				Name:   "rebuild",
				Usage:  "Force a fresh index build, ignoring the cache",
				Action: rebuildCommand,
			},
			{
				Name:   "inspect",
				Usage:  "Show index fingerprint, fragment count, and topic histogram",
				Action: inspectCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openEngine(c *cli.Context) (*kbsearch.Engine, error) {
	cfg, err := kbsearch.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	return kbsearch.NewEngine(c.Context, cfg)
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("query is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	results, err := engine.Search(c.Context, query, c.Int("top"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	for _, hit := range results {
		fmt.Printf("%d: [%s] (%s, topic=%s, id=%016x)\n", hit.Rank, hit.Fragment.FragmentID, hit.Fragment.Path, hit.Fragment.Topic, uint64(hit.Fragment.ID))
		fmt.Printf("   hybrid=%.3f embed=%.3f lexical=%.3f\n", hit.ScoreHybrid, hit.ScoreEmbed, hit.ScoreLexical)
		fmt.Printf("   %s\n", firstLine(hit.Fragment.Text))
	}
	return nil
}

func rebuildCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Rebuild(c.Context); err != nil {
		return err
	}

	ix, err := engine.Index()
	if err != nil {
		return err
	}
	fmt.Printf("Rebuilt index %s with %d fragments\n", ix.Snapshot.Fingerprint, ix.Len())
	return nil
}

func inspectCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ix, err := engine.Index()
	if err != nil {
		return err
	}

	histogram := make(map[core.Topic]int)
	for _, fragment := range ix.Snapshot.Fragments {
		histogram[fragment.Topic]++
	}

	fmt.Printf("Fingerprint:   %s\n", ix.Snapshot.Fingerprint)
	fmt.Printf("Fragments:     %d\n", ix.Len())
	fmt.Printf("Lexical terms: %d\n", len(ix.Snapshot.Lexical.Terms))
	for _, topic := range core.Topics {
		if count := histogram[topic]; count > 0 {
			fmt.Printf("  %-12s %d\n", topic, count)
		}
	}
	return nil
}

// firstLine truncates a fragment preview to its first line.
func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}
