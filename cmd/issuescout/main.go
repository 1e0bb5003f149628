// Copyright 2025 Poiesic Systems
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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/issuescout"
	"github.com/poiesic/issuescout/ai"
	"github.com/poiesic/issuescout/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "issuescout",
		Usage: "Recommend open-source issues matching a developer profile",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "recommend",
				Usage:  "Fetch and rank open issues for a profile",
				Action: recommendCommand,
				Flags: append(recommenderFlags(),
					&cli.StringFlag{
						Name:    "profile",
						Aliases: []string{"p"},
						Usage:   "Developer profile text",
					},
					&cli.StringFlag{
						Name:  "profile-file",
						Usage: "Read the profile text from a file",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Programming language filter (default: detect from profile)",
						Value: "all",
					},
					&cli.IntFlag{
						Name:  "per-page",
						Usage: "Number of issues to return",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "top-n",
						Usage: "Number of top-starred repositories to scan",
						Value: 100,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit results as JSON",
					},
				),
			},
			{
				Name:   "warm",
				Usage:  "Precompute and cache the experience-level reference embeddings",
				Action: warmCommand,
				Flags:  recommenderFlags(),
			},
			{
				Name:   "cache-clear",
				Usage:  "Clear cached embeddings and issue batches",
				Action: cacheClearCommand,
				Flags: append(recommenderFlags(),
					&cli.StringFlag{
						Name:  "scope",
						Usage: "What to clear (all, profiles, references, issues)",
						Value: "all",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// recommenderFlags are the flags shared by every command that opens a
// Recommender.
func recommenderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			Aliases: []string{"c"},
			Usage:   "Path to the cache directory",
			Value:   defaultCachePath(),
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-MiniLM-L6-v2",
		},
		&cli.StringFlag{
			Name:  "classifier-host",
			Usage: "Classifier service host URL (defaults to embedding-host)",
		},
		&cli.StringFlag{
			Name:  "classifier-model",
			Usage: "Classifier model name",
			Value: "qwen2.5:3b",
		},
		&cli.BoolFlag{
			Name:  "llm",
			Usage: "Classify profiles with the chat model instead of embeddings",
		},
		&cli.StringFlag{
			Name:    "github-token",
			Usage:   "GitHub API token (defaults to GITHUB_TOKEN)",
			EnvVars: []string{"GITHUB_TOKEN"},
		},
	}
}

func defaultCachePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ".issuescout-cache"
	}
	return cacheDir + "/issuescout"
}

// openRecommender builds a Recommender from the shared flags.
func openRecommender(c *cli.Context) (*issuescout.Recommender, error) {
	classifierHost := c.String("classifier-host")
	if classifierHost == "" {
		classifierHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithClassifierHost(classifierHost),
		ai.WithClassifierModel(c.String("classifier-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []issuescout.RecommenderOption{
		issuescout.WithAIConfig(aiConfig),
	}
	if c.String("github-token") != "" {
		opts = append(opts, issuescout.WithGitHubToken(c.String("github-token")))
	}
	if c.Bool("llm") {
		opts = append(opts, issuescout.WithLLMClassifier())
	}

	rec, err := issuescout.New(c.String("cache"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open recommender: %w", err)
	}
	return rec, nil
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	profile := c.String("profile")
	if profileFile := c.String("profile-file"); profileFile != "" {
		if profile != "" {
			return fmt.Errorf("use either --profile or --profile-file, not both")
		}
		data, err := os.ReadFile(profileFile)
		if err != nil {
			return fmt.Errorf("failed to read profile file: %w", err)
		}
		profile = strings.TrimSpace(string(data))
	}

	rec, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer rec.Close()

	result, err := rec.Recommend(ctx, &core.Request{
		Language: c.String("language"),
		PerPage:  c.Int("per-page"),
		TopN:     c.Int("top-n"),
		Profile:  profile,
	})
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if c.Bool("json") {
		return printJSON(result)
	}

	fmt.Printf("Language: %s\n", result.Language)
	fmt.Printf("Experience level: %s\n", result.Experience)
	fmt.Println()

	if len(result.Issues) == 0 {
		fmt.Println("No issues found.")
		return nil
	}

	for i, issue := range result.Issues {
		if result.Ranked {
			fmt.Printf("%2d. [%.4f] %s\n", i+1, issue.Similarity, issue.Issue.Title)
		} else {
			fmt.Printf("%2d. %s\n", i+1, issue.Issue.Title)
		}
		fmt.Printf("    %s (%s)\n", issue.Issue.URL, issue.Issue.Repo)
	}

	return nil
}

func warmCommand(c *cli.Context) error {
	ctx := context.Background()

	rec, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer rec.Close()

	fmt.Fprintf(os.Stderr, "Cache: %s\n", c.String("cache"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))

	if err := rec.WarmReferences(ctx); err != nil {
		return fmt.Errorf("warm-up failed: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Reference embeddings cached.")
	return nil
}

func cacheClearCommand(c *cli.Context) error {
	ctx := context.Background()

	rec, err := openRecommender(c)
	if err != nil {
		return err
	}
	defer rec.Close()

	scope := strings.ToLower(c.String("scope"))
	switch scope {
	case "all":
		err = rec.ClearAll(ctx)
	case "profiles":
		err = rec.ClearProfileEmbeddings(ctx)
	case "references":
		err = rec.ClearReferenceEmbeddings(ctx)
	case "issues":
		err = rec.ClearIssueBatches(ctx)
	default:
		return fmt.Errorf("invalid scope %q: must be one of all, profiles, references, issues", scope)
	}
	if err != nil {
		return fmt.Errorf("cache clear failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cleared cache scope: %s\n", scope)
	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
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
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
