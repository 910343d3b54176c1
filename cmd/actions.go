package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/senflix/sfx/internal/formatter"
	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
	"github.com/senflix/sfx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// SetupDatabase initializes the search-history database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return nil
}

// SetupSession imports the browser session cookie from a cURL command so
// requests replay the signed-in session.
func (r *Runner) SetupSession(ctx context.Context, cmd *cli.Command) error {
	curlCmd := cmd.String("curl")
	curlFile := cmd.String("curl-file")
	outputPath := cmd.String("output")

	if curlCmd == "" && curlFile == "" {
		return fmt.Errorf("%w: either --curl or --curl-file must be provided", shared.ErrMissingArgument)
	}

	if curlCmd != "" && curlFile != "" {
		return fmt.Errorf("%w: cannot specify both --curl and --curl-file", shared.ErrInvalidArgument)
	}

	r.logger.Info("parsing cURL command for session cookie")

	var raw []byte
	if curlFile != "" {
		data, err := os.ReadFile(curlFile)
		if err != nil {
			return fmt.Errorf("failed to read cURL file: %w", err)
		}
		raw = data
	} else {
		raw = []byte(curlCmd)
	}

	session, err := shared.ParseCurlCommand(raw)
	if err != nil {
		return fmt.Errorf("failed to parse cURL command: %w", err)
	}
	if session.Cookie == "" {
		return fmt.Errorf("%w: cURL command carries no cookie header", shared.ErrMissingSession)
	}

	if outputPath == "" {
		outputPath = r.config.Profile.CookiePath
	}
	if outputPath == "" {
		outputPath = "session.curl"
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, raw, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if r.api != nil {
		r.api.SetSession(session)
	}

	r.logger.Info("session saved", "path", outputPath)
	r.writePlain("Session cookie imported successfully\n")
	r.writePlain("Saved to: %s\n", outputPath)
	r.writePlainln("Run 'sfx search \"heat\"' to test the session.")
	return nil
}

// ProfileSelect sets the active profile on the server session.
func (r *Runner) ProfileSelect(ctx context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: profile id must be a number", shared.ErrInvalidArgument)
	}

	if err := r.svc.SelectProfile(ctx, id); err != nil {
		return fmt.Errorf("failed to select profile: %w", err)
	}

	r.writePlain("Profile %d selected\n", id)
	return nil
}

// Search runs one combined catalog and OMDB lookup and prints the results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	results, err := r.svc.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !cmd.Bool("no-history") {
		if history, closeDB, err := r.openHistory(); err == nil {
			if err := history.Record(query, len(results)); err != nil {
				r.logger.Warn("failed to record search history", "error", err)
			}
			closeDB()
		} else {
			r.logger.Warn("history unavailable", "error", err)
		}
	}

	rs := &formatter.ResultSet{Query: query, Movies: results}

	if format := cmd.String("export"); format != "" {
		return r.exportResults(rs, format, cmd.String("output"))
	}

	if cmd.Bool("json") {
		return r.writeJSON(rs, true)
	}

	r.writePlain("Results for %q: %d\n\n", query, len(results))
	for i, movie := range results {
		badge := "add"
		if movie.InCatalog() {
			badge = "catalog"
		}
		year := ""
		if movie.Year != "" {
			year = fmt.Sprintf(" (%s)", movie.Year)
		}
		r.writePlain("%2d. [%s] %s%s\n", i+1, badge, movie.Title, year)
	}
	return nil
}

// exportResults writes the result set to a file in the requested format.
func (r *Runner) exportResults(rs *formatter.ResultSet, format, output string) error {
	var path string
	var err error

	switch format {
	case "csv":
		path, err = formatter.WriteCSVExport(rs, output)
	case "markdown", "md":
		path, err = formatter.WriteMarkdownExport(rs, output)
	case "text", "txt":
		path, err = formatter.WriteTextExport(rs, output)
	case "json":
		path, err = formatter.WriteJSONExport(rs, output)
	default:
		return fmt.Errorf("%w: unsupported export format %q", shared.ErrInvalidFlag, format)
	}

	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlain("Exported %d results to %s\n", len(rs.Movies), path)
	return nil
}

// Categories lists the server's category options.
func (r *Runner) Categories(ctx context.Context, cmd *cli.Command) error {
	categories, err := r.svc.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(categories, true)
	}

	for _, category := range categories {
		r.writePlain("%3d  %s\n", category.ID, category.Name)
	}
	return nil
}

// Add submits a movie to the collection from command-line flags.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	var year *int
	if y := cmd.String("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return fmt.Errorf("%w: year must be a number", shared.ErrInvalidFlag)
		}
		year = &n
	}

	categories := []int{}
	for _, id := range cmd.IntSlice("category") {
		categories = append(categories, int(id))
	}

	movie := models.NewMovie{
		Title:      cmd.String("title"),
		Year:       year,
		IMDbID:     cmd.String("imdb-id"),
		Plot:       cmd.String("plot"),
		Poster:     cmd.String("poster"),
		Director:   cmd.String("director"),
		Actors:     cmd.String("actors"),
		Source:     models.SourceManual,
		Watched:    cmd.Bool("watched"),
		Watchlist:  cmd.Bool("watchlist"),
		Favorite:   cmd.Bool("favorite"),
		Rating:     int(cmd.Int("rating")),
		Comment:    cmd.String("comment"),
		Categories: categories,
	}

	result, err := r.svc.AddMovie(ctx, movie)
	if err != nil {
		return fmt.Errorf("failed to add movie: %w", err)
	}

	r.writePlain("Added %q to your collection\n", movie.Title)
	if result.PosterFilename != "" {
		r.writePlain("Poster stored as: %s\n", result.PosterFilename)
	}
	return nil
}

// Toggle flips a per-movie flag and prints the server's declared state.
func (r *Runner) Toggle(ctx context.Context, cmd *cli.Command) error {
	action := models.Action(cmd.StringArg("action"))
	if !action.IsToggle() {
		return fmt.Errorf("%w: action must be one of watched, watchlist, favorite", shared.ErrInvalidArgument)
	}

	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: movie id must be a number", shared.ErrInvalidArgument)
	}

	result, err := r.svc.Toggle(ctx, action, id)
	if err != nil {
		return fmt.Errorf("toggle failed: %w", err)
	}

	state := "unknown"
	if result.NewState != nil {
		state = strconv.FormatBool(*result.NewState)
	}
	r.writePlain("%s for movie %d is now %s\n", action, id, state)
	return nil
}

// Rate stores a rating with optional comment.
func (r *Runner) Rate(ctx context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: movie id must be a number", shared.ErrInvalidArgument)
	}

	value, err := strconv.Atoi(cmd.StringArg("rating"))
	if err != nil {
		return fmt.Errorf("%w: rating must be a number", shared.ErrInvalidArgument)
	}

	rating := models.Rating{
		MovieID: id,
		Rating:  value,
		Comment: cmd.String("comment"),
	}

	if err := r.svc.Rate(ctx, rating); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	r.writePlain("Rated movie %d: %d/10\n", id, value)
	return nil
}

// RatingShow prints the stored rating for a movie.
func (r *Runner) RatingShow(ctx context.Context, cmd *cli.Command) error {
	id, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: movie id must be a number", shared.ErrInvalidArgument)
	}

	rating, err := r.svc.MovieRating(ctx, id)
	if errors.Is(err, shared.ErrNoRating) {
		r.writePlain("Movie %d is not rated yet\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch rating: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(rating, true)
	}

	r.writePlain("Movie %d: %d/10\n", rating.MovieID, rating.Rating)
	if rating.Comment != "" {
		r.writePlain("Comment: %s\n", rating.Comment)
	}
	return nil
}

// HistoryExport re-runs recent searches and exports each result set to disk.
func (r *Runner) HistoryExport(ctx context.Context, cmd *cli.Command) error {
	history, closeDB, err := r.openHistory()
	if err != nil {
		return err
	}
	defer closeDB()

	entries, err := history.Recent(int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(entries) == 0 {
		r.writePlain("No saved searches to export\n")
		return nil
	}

	queries := make([]string, len(entries))
	for i, entry := range entries {
		queries[i] = entry.Query()
	}

	engine := tasks.NewSearchExporter(r.svc)
	progress := make(chan tasks.ProgressUpdate, 64)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range progress {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := engine.BulkExport(ctx, progress, queries, tasks.BulkExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output-dir"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
	})
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlain("\nExported %d/%d queries to %s\n",
		result.SuccessfulExports, result.TotalQueries, result.OutputDirectory)
	if result.FailedExports > 0 {
		r.writePlain("%d queries failed; see %s\n", result.FailedExports, result.ManifestPath)
	}
	return nil
}

// History lists recent searches from the local database.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	history, closeDB, err := r.openHistory()
	if err != nil {
		return err
	}
	defer closeDB()

	entries, err := history.Recent(int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if cmd.Bool("json") {
		type entryJSON struct {
			Query       string `json:"query"`
			ResultCount int    `json:"result_count"`
			UpdatedAt   string `json:"updated_at"`
		}
		out := make([]entryJSON, len(entries))
		for i, entry := range entries {
			out[i] = entryJSON{
				Query:       entry.Query(),
				ResultCount: entry.ResultCount(),
				UpdatedAt:   entry.UpdatedAt().Format("2006-01-02 15:04:05"),
			}
		}
		return r.writeJSON(out, true)
	}

	for _, entry := range entries {
		r.writePlain("%s  %-30q %d results\n",
			entry.UpdatedAt().Format("2006-01-02 15:04"), entry.Query(), entry.ResultCount())
	}
	return nil
}
