package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/r3labs/diff/v3"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alanbriolat/ytmeta"
	"github.com/alanbriolat/ytmeta/async"
	"github.com/alanbriolat/ytmeta/fetch"
	"github.com/alanbriolat/ytmeta/generic"
	"github.com/alanbriolat/ytmeta/internal/config"
	"github.com/alanbriolat/ytmeta/internal/pagecache"
	"github.com/alanbriolat/ytmeta/model"
	"github.com/alanbriolat/ytmeta/parse"
	_ "github.com/alanbriolat/ytmeta/providers"
)

func main() {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := logConfig.Build()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()
	zap.RedirectStdLog(logger)
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ytmeta.WithLogger(ctx, logger)

	a := &app{level: logConfig.Level}
	cliApp := &cli.App{
		Name:  "ytmeta",
		Usage: "read video, search and playlist metadata from YouTube pages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "read settings from `FILE`",
			},
			&cli.StringFlag{
				Name:  "cache",
				Usage: "keep fetched pages in `FILE`",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "do not use the page cache",
			},
			&cli.BoolFlag{
				Name:  "refresh",
				Usage: "refetch pages even if cached",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print results as JSON",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug messages",
			},
		},
		Before: a.setup,
		After:  a.close,
		Commands: []*cli.Command{
			{
				Name:      "video",
				Usage:     "parse watch pages from their embedded data",
				ArgsUsage: "URL...",
				Action:    a.video,
			},
			{
				Name:      "info",
				Usage:     "parse watch pages from their meta tags",
				ArgsUsage: "URL|ID...",
				Action:    a.info,
			},
			{
				Name:      "search",
				Usage:     "list the first page of search results",
				ArgsUsage: "QUERY...",
				Action:    a.search,
			},
			{
				Name:      "lookup",
				Usage:     "resolve each input as a video URL, video ID or search",
				ArgsUsage: "INPUT...",
				Action:    a.lookup,
			},
			{
				Name:  "cache",
				Usage: "inspect the page cache",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list cached pages",
						Action: a.cacheList,
					},
					{
						Name:   "prune",
						Usage:  "remove cached pages older than the maximum age",
						Action: a.cachePrune,
					},
				},
			},
		},
		HideHelpCommand: true,
	}

	result := async.Run(func() error { return cliApp.RunContext(ctx, os.Args) })

	select {
	case err = <-result:
		if err != nil {
			logger.Fatal(err.Error())
		}
	case <-ctx.Done():
		stop()
		err = <-result
		if err != nil {
			logger.Fatal(err.Error())
		}
	}
}

type app struct {
	level  zap.AtomicLevel
	config *config.Config
	cache  *pagecache.Cache
	cached *fetch.Cached
	client *ytmeta.Client
	out    printer
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	a.config = cfg
	if c.Bool("verbose") {
		a.level.SetLevel(zapcore.DebugLevel)
	} else if level, err := cfg.Level(); err == nil {
		a.level.SetLevel(level)
	}
	a.out = printer{w: c.App.Writer, json: c.Bool("json")}

	logger := ytmeta.Logger(c.Context)
	var fetcher fetch.Fetcher = fetch.Reusable(append(cfg.FetchOptions(), fetch.WithLogger(logger))...)

	cachePath := cfg.CachePath
	if c.IsSet("cache") {
		cachePath = c.String("cache")
	}
	if cachePath != "" && !c.Bool("no-cache") {
		if a.cache, err = pagecache.Open(cachePath, 5*time.Second); err != nil {
			return fmt.Errorf("failed to open page cache: %w", err)
		}
		a.cached = &fetch.Cached{
			Fetcher: fetcher,
			Store:   a.cache,
			MaxAge:  cfg.CacheMaxAge,
			Refresh: c.Bool("refresh"),
		}
		fetcher = a.cached
		logger.Sugar().Debugw("using page cache", "path", cachePath, "max_age", cfg.CacheMaxAge)
	}

	clientConfig := ytmeta.DefaultConfig
	clientConfig.Fetcher = fetcher
	clientConfig.CacheSize = cfg.MemoryCacheSize
	a.client, err = ytmeta.New(clientConfig)
	return err
}

func (a *app) close(c *cli.Context) error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}

// requireArgs returns the command's arguments, or an error naming what was expected.
func requireArgs(c *cli.Context) ([]string, error) {
	if c.NArg() == 0 {
		return nil, fmt.Errorf("%s: expected %s", c.Command.Name, c.Command.ArgsUsage)
	}
	return c.Args().Slice(), nil
}

func (a *app) video(c *cli.Context) error {
	urls, err := requireArgs(c)
	if err != nil {
		return err
	}
	for _, url := range urls {
		var previous generic.Option[model.Video]
		if a.cached != nil && a.cached.Refresh {
			if page, ok := a.cached.Lookup(url); ok {
				previous = generic.NewResult(parse.Video(page.Body)).Ok()
			}
		}
		video, err := a.client.Video(c.Context, url)
		if err != nil {
			return fmt.Errorf("%s: %w", url, err)
		}
		if old, ok := previous.Get(); ok {
			logChanges(ytmeta.Logger(c.Context).Sugar().With("url", url), old, video)
		}
		if err := a.out.video(video); err != nil {
			return err
		}
	}
	return nil
}

// videoRecord is a Video flattened for diffing.
type videoRecord struct {
	ID           string        `diff:"id"`
	Length       time.Duration `diff:"length"`
	Title        string        `diff:"title"`
	UploaderID   string        `diff:"uploader_id"`
	UploaderName string        `diff:"uploader_name"`
}

func newVideoRecord(v model.Video) videoRecord {
	return videoRecord{
		ID:           v.ID.String(),
		Length:       v.Length,
		Title:        v.Title,
		UploaderID:   v.Uploader.ID.String(),
		UploaderName: v.Uploader.Name,
	}
}

func logChanges(logger *zap.SugaredLogger, cached, fresh model.Video) {
	changes, err := diff.Diff(newVideoRecord(cached), newVideoRecord(fresh))
	if err != nil {
		logger.Errorf("failed to diff cached and fresh video: %v", err)
		return
	}
	if len(changes) == 0 {
		logger.Info("unchanged since cached")
	}
	for _, change := range changes {
		logger.Infof("changed %v: %#v -> %#v", strings.Join(change.Path, "."), change.From, change.To)
	}
}

func (a *app) info(c *cli.Context) error {
	inputs, err := requireArgs(c)
	if err != nil {
		return err
	}
	for _, input := range inputs {
		req, err := ytmeta.DefaultProviderRegistry.MatchWith("youtube", input)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		req.Kind = ytmeta.KindVideoInformation
		result, err := a.client.Do(c.Context, req)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		if err := a.out.information(*result.Information); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) search(c *cli.Context) error {
	words, err := requireArgs(c)
	if err != nil {
		return err
	}
	result, err := a.client.Search(c.Context, strings.Join(words, " "))
	if err != nil {
		return err
	}
	return a.out.search(result)
}

func (a *app) lookup(c *cli.Context) error {
	inputs, err := requireArgs(c)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetWriter(c.App.ErrWriter),
		progressbar.OptionSetDescription("looking up"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	pending := make([]<-chan generic.Result[*ytmeta.Result], len(inputs))
	for i, input := range inputs {
		pending[i] = async.RunResult(func() (*ytmeta.Result, error) {
			defer func() { _ = bar.Add(1) }()
			return a.client.Lookup(c.Context, input)
		})
	}

	var failures error
	results := make([]*ytmeta.Result, 0, len(inputs))
	for i, ch := range pending {
		if result, err := (<-ch).Get(); err != nil {
			failures = multierror.Append(failures, multierror.Prefix(err, fmt.Sprintf("[%v]", inputs[i])))
		} else {
			results = append(results, result)
		}
	}
	_ = bar.Finish()

	for _, result := range results {
		if err := a.out.result(result); err != nil {
			return err
		}
	}
	return failures
}

func (a *app) cacheList(c *cli.Context) error {
	if a.cache == nil {
		return fmt.Errorf("no page cache configured")
	}
	urls, err := a.cache.List()
	if err != nil {
		return err
	}
	for _, url := range urls {
		if _, err := fmt.Fprintln(c.App.Writer, url); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) cachePrune(c *cli.Context) error {
	if a.cache == nil {
		return fmt.Errorf("no page cache configured")
	}
	if a.config.CacheMaxAge == 0 {
		zap.S().Info("cached pages never expire, nothing to prune")
		return nil
	}
	removed, err := a.cache.Prune(time.Now().Add(-a.config.CacheMaxAge))
	if err != nil {
		return err
	}
	zap.S().Infof("removed %d cached pages", removed)
	return nil
}
