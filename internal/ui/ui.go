package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/senflix/sfx/internal/flow"
	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/repositories"
	"github.com/senflix/sfx/internal/services"
	"github.com/senflix/sfx/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	WizardView
	RatingView
)

// refreshDelay is the settle window after a successful submit before the
// active search re-runs, so the server has finished poster processing.
const refreshDelay = 1500 * time.Millisecond

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	svc     services.Service
	history *repositories.SearchQueryRepository
	logger  *log.Logger
	baseURL string

	width  int
	height int

	input      textinput.Model
	comment    textinput.Model
	resultList list.Model

	search   *flow.SearchSession
	wizard   *flow.WizardSession
	rating   *flow.RatingSession
	toggles  *flow.ToggleController
	notifier *flow.Notifier

	categoryList list.Model
	categories   []models.CategoryOption

	err  error
	help help.Model
	keys keyMap
}

// Options carries the optional dependencies for [NewModel].
type Options struct {
	History  *repositories.SearchQueryRepository
	Logger   *log.Logger
	BaseURL  string
	Debounce time.Duration
	MinQuery int
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, svc services.Service, opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "Search movies..."
	input.Focus()

	comment := textinput.New()
	comment.Placeholder = "Comment (optional)"

	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Model{
		ctx:      ctx,
		view:     SearchView,
		svc:      svc,
		history:  opts.History,
		logger:   logger,
		baseURL:  opts.BaseURL,
		input:    input,
		comment:  comment,
		search:   flow.NewSearchSession(opts.MinQuery, opts.Debounce),
		toggles:  flow.NewToggleController(),
		notifier: flow.NewNotifier(),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init starts the cursor blink on the search box.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.resultList.Width() != 0 {
			m.resultList.SetSize(msg.Width-4, msg.Height-10)
		}
		if m.categoryList.Width() != 0 {
			m.categoryList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case WizardView:
			return m.handleWizardKeys(msg)
		case RatingView:
			return m.handleRatingKeys(msg)
		}

	case debounceMsg:
		if m.search.ShouldFire(msg.seq) {
			reqCtx, seq := m.search.Start(m.ctx, msg.seq)
			return m, m.doSearch(reqCtx, seq, m.search.Query())
		}
		return m, nil

	case searchDoneMsg:
		return m.handleSearchDone(msg)

	case categoriesFetchedMsg:
		if msg.err != nil {
			return m, m.showToast(flow.SlotModal, flow.ToastError, errorText(msg.err))
		}
		m.categories = msg.categories
		m.rebuildCategoryList()
		return m, nil

	case movieAddedMsg:
		return m.handleMovieAdded(msg)

	case toggleDoneMsg:
		if msg.err != nil {
			m.toggles.Fail(msg.movieID, msg.action)
			return m, m.showToast(flow.SlotGlobal, flow.ToastError, errorText(msg.err))
		}
		m.toggles.Resolve(msg.movieID, msg.action, msg.result.NewState, msg.result.UserFlags())
		return m, nil

	case ratingFetchedMsg:
		if m.rating != nil && m.rating.MovieID() == msg.movieID {
			m.rating.Prefill(msg.rating, msg.err)
			m.comment.SetValue(m.rating.Comment())
		}
		return m, nil

	case ratingSavedMsg:
		return m.handleRatingSaved(msg)

	case toastExpiredMsg:
		m.notifier.Dismiss(msg.slot, msg.id)
		return m, nil

	case refreshMsg:
		query := m.search.Query()
		if len(strings.TrimSpace(query)) >= 2 {
			seq := m.search.Type(query)
			reqCtx, seq := m.search.Start(m.ctx, seq)
			return m, m.doSearch(reqCtx, seq, query)
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit", m.err))
	}

	switch m.view {
	case SearchView:
		return m.renderSearch()
	case WizardView:
		return m.renderWizard()
	case RatingView:
		return m.renderRating()
	default:
		return ""
	}
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.enter):
		if movie, ok := m.selectedMovie(); ok {
			if movie.InCatalog() {
				if err := shared.OpenBrowser(fmt.Sprintf("%s/movie/%d", m.baseURL, movie.ID)); err != nil {
					m.logger.Warn("failed to open browser", "error", err)
				}
				return m, nil
			}
			m.wizard = flow.ResumeWizardSession(movie, flow.StepConfirm)
			m.view = WizardView
			return m, nil
		}
		return m, nil

	case key.Matches(msg, m.keys.watched):
		return m, m.beginToggle(models.ActionWatched)
	case key.Matches(msg, m.keys.watchlist):
		return m, m.beginToggle(models.ActionWatchlist)
	case key.Matches(msg, m.keys.favorite):
		return m, m.beginToggle(models.ActionFavorite)

	case key.Matches(msg, m.keys.rate):
		if movie, ok := m.selectedMovie(); ok && movie.InCatalog() {
			m.rating = flow.NewRatingSession(movie.ID, movie.Title, movie.PosterURL())
			m.comment.SetValue("")
			m.view = RatingView
			return m, m.fetchRating(movie.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.open):
		if movie, ok := m.selectedMovie(); ok && movie.InCatalog() {
			if err := shared.OpenBrowser(fmt.Sprintf("%s/movie/%d", m.baseURL, movie.ID)); err != nil {
				m.logger.Warn("failed to open browser", "error", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.down):
		if m.resultList.Width() == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.resultList, cmd = m.resultList.Update(msg)
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		seq := m.search.Type(m.input.Value())
		if m.search.Phase() == flow.SearchWaiting {
			return m, tea.Batch(cmd, m.armDebounce(seq))
		}
		if m.resultList.Width() != 0 {
			m.resultList.SetItems(nil)
		}
	}
	return m, cmd
}

func (m *Model) handleWizardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.wizard == nil {
		m.view = SearchView
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.notifier.Clear(flow.SlotModal)
		if m.wizard.Step() <= flow.StepConfirm {
			m.wizard = nil
			m.view = SearchView
			return m, nil
		}
		m.wizard.Back()
		return m, nil

	case key.Matches(msg, m.keys.enter), key.Matches(msg, m.keys.next):
		return m.advanceWizard()
	}

	switch m.wizard.Step() {
	case flow.StepPreferences:
		return m.handlePreferenceKeys(msg)
	case flow.StepCategories:
		switch {
		case key.Matches(msg, m.keys.toggle):
			if item, ok := m.categoryList.SelectedItem().(categoryItem); ok {
				if err := m.wizard.ToggleCategory(item.category.ID); err != nil {
					return m, m.showToast(flow.SlotModal, flow.ToastError, err.Error())
				}
				m.rebuildCategoryList()
			}
			return m, nil
		case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.down):
			if m.categoryList.Width() == 0 {
				return m, nil
			}
			var cmd tea.Cmd
			m.categoryList, cmd = m.categoryList.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) handlePreferenceKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prefs := m.wizard.Preferences()

	switch {
	case key.Matches(msg, m.keys.watched):
		prefs.Watched = !prefs.Watched
	case key.Matches(msg, m.keys.watchlist):
		prefs.Watchlist = !prefs.Watchlist
	case key.Matches(msg, m.keys.favorite):
		prefs.Favorite = !prefs.Favorite
	default:
		switch msg.String() {
		case "left":
			if prefs.Rating > 0 {
				prefs.Rating--
			}
		case "right":
			if prefs.Rating < models.RatingMax {
				prefs.Rating++
			}
		default:
			var cmd tea.Cmd
			m.comment, cmd = m.comment.Update(msg)
			prefs.Comment = m.comment.Value()
			m.wizard.SetPreferences(prefs)
			return m, cmd
		}
	}

	m.wizard.SetPreferences(prefs)
	return m, nil
}

// advanceWizard applies the forward control: Next on intermediate steps,
// submit on the final one.
func (m *Model) advanceWizard() (tea.Model, tea.Cmd) {
	m.notifier.Clear(flow.SlotModal)

	if m.wizard.AtFinalStep() {
		if !m.wizard.BeginSubmit() {
			return m, nil
		}
		payload, err := m.wizard.Payload()
		if err != nil {
			m.wizard.EndSubmit()
			return m, m.showToast(flow.SlotModal, flow.ToastError, err.Error())
		}
		return m, m.submitMovie(payload)
	}

	if err := m.wizard.Next(); err != nil {
		return m, m.showToast(flow.SlotModal, flow.ToastError, err.Error())
	}

	if m.wizard.Step() == flow.StepCategories {
		// Categories are fetched fresh on every entry.
		m.categories = nil
		if m.categoryList.Width() != 0 {
			m.categoryList.SetItems(nil)
		}
		return m, m.fetchCategories()
	}
	if m.wizard.Step() == flow.StepPreferences {
		m.comment.SetValue(m.wizard.Preferences().Comment)
		m.comment.Focus()
	}
	return m, nil
}

func (m *Model) handleRatingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.rating == nil {
		m.view = SearchView
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.notifier.Clear(flow.SlotModal)
		m.rating = nil
		m.view = SearchView
		return m, nil

	case key.Matches(msg, m.keys.enter):
		m.rating.SetComment(m.comment.Value())
		if err := m.rating.BeginSubmit(); err != nil {
			return m, m.showToast(flow.SlotModal, flow.ToastError, err.Error())
		}
		return m, m.saveRating(m.rating.Payload())
	}

	switch msg.String() {
	case "left":
		if m.rating.Rating() > 1 {
			m.rating.SetRating(m.rating.Rating() - 1)
		}
		return m, nil
	case "right":
		m.rating.SetRating(m.rating.Rating() + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	if !m.search.Accept(msg.seq, msg.results, msg.err) {
		return m, nil
	}

	if msg.err != nil {
		m.logger.Warn("search failed", "query", m.search.Query(), "error", msg.err)
		return m, m.showToast(flow.SlotGlobal, flow.ToastError, flow.MsgSearchFailed)
	}

	if m.history != nil {
		if err := m.history.Record(m.search.Query(), len(msg.results)); err != nil {
			m.logger.Warn("failed to record search history", "error", err)
		}
	}

	items := make([]list.Item, len(msg.results))
	for i, movie := range msg.results {
		if movie.InCatalog() {
			m.toggles.Seed(movie.ID, models.UserFlags{})
		}
		items[i] = movieItem{movie: movie}
	}

	if m.resultList.Width() == 0 {
		m.resultList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
		m.resultList.SetShowTitle(false)
		m.resultList.SetFilteringEnabled(false)
	} else {
		m.resultList.SetItems(items)
	}
	return m, nil
}

func (m *Model) handleMovieAdded(msg movieAddedMsg) (tea.Model, tea.Cmd) {
	if m.wizard == nil {
		return m, nil
	}

	if msg.err != nil {
		m.wizard.EndSubmit()
		return m, m.showToast(flow.SlotModal, flow.ToastError, errorText(msg.err))
	}

	m.wizard = nil
	m.view = SearchView
	return m, tea.Batch(
		m.showToast(flow.SlotGlobal, flow.ToastSuccess, flow.MsgMovieAdded),
		tea.Tick(refreshDelay, func(time.Time) tea.Msg { return refreshMsg{} }),
	)
}

func (m *Model) handleRatingSaved(msg ratingSavedMsg) (tea.Model, tea.Cmd) {
	if m.rating == nil || m.rating.MovieID() != msg.movieID {
		return m, nil
	}

	if msg.err != nil {
		m.rating.EndSubmit()
		return m, m.showToast(flow.SlotModal, flow.ToastError, errorText(msg.err))
	}

	rated := true
	m.toggles.Seed(msg.movieID, models.UserFlags{Rated: &rated})
	m.rating = nil
	m.view = SearchView
	return m, m.showToast(flow.SlotGlobal, flow.ToastSuccess, flow.MsgRatingSaved)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case SearchView:
		m.input, cmd = m.input.Update(msg)
	case WizardView:
		if m.wizard != nil && m.wizard.Step() == flow.StepCategories && m.categoryList.Width() != 0 {
			m.categoryList, cmd = m.categoryList.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) selectedMovie() (models.MovieCandidate, bool) {
	item, ok := m.resultList.SelectedItem().(movieItem)
	if !ok {
		return models.MovieCandidate{}, false
	}
	return item.movie, true
}

// beginToggle optimistically flips the selected movie's control and issues
// the request. Ignored for non-catalog results or while a request for the
// same control is in flight.
func (m *Model) beginToggle(action models.Action) tea.Cmd {
	movie, ok := m.selectedMovie()
	if !ok || !movie.InCatalog() {
		return nil
	}
	if !m.toggles.Begin(movie.ID, action) {
		return nil
	}
	return m.doToggle(action, movie.ID)
}

func (m *Model) rebuildCategoryList() {
	items := make([]list.Item, len(m.categories))
	for i, category := range m.categories {
		items[i] = categoryItem{
			category: category,
			selected: m.wizard != nil && m.wizard.CategorySelected(category.ID),
		}
	}

	if m.categoryList.Width() == 0 {
		m.categoryList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
		m.categoryList.SetShowTitle(false)
		m.categoryList.SetFilteringEnabled(false)
	} else {
		index := m.categoryList.Index()
		m.categoryList.SetItems(items)
		m.categoryList.Select(index)
	}
}

func (m *Model) armDebounce(seq uint64) tea.Cmd {
	return tea.Tick(m.search.Debounce(), func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m *Model) doSearch(ctx context.Context, seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.svc.Search(ctx, query)
		return searchDoneMsg{seq: seq, results: results, err: err}
	}
}

func (m *Model) fetchCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := m.svc.Categories(m.ctx)
		return categoriesFetchedMsg{categories: categories, err: err}
	}
}

func (m *Model) submitMovie(payload models.NewMovie) tea.Cmd {
	return func() tea.Msg {
		result, err := m.svc.AddMovie(m.ctx, payload)
		return movieAddedMsg{result: result, err: err}
	}
}

func (m *Model) doToggle(action models.Action, movieID int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.svc.Toggle(m.ctx, action, movieID)
		return toggleDoneMsg{movieID: movieID, action: action, result: result, err: err}
	}
}

func (m *Model) fetchRating(movieID int) tea.Cmd {
	return func() tea.Msg {
		rating, err := m.svc.MovieRating(m.ctx, movieID)
		return ratingFetchedMsg{movieID: movieID, rating: rating, err: err}
	}
}

func (m *Model) saveRating(payload models.Rating) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Rate(m.ctx, payload)
		return ratingSavedMsg{movieID: payload.MovieID, err: err}
	}
}

// showToast replaces the slot's toast and arms its expiry timer.
func (m *Model) showToast(slot flow.ToastSlot, level flow.ToastLevel, message string) tea.Cmd {
	toast := m.notifier.Show(slot, level, message)
	return tea.Tick(toast.Duration(), func(time.Time) tea.Msg {
		return toastExpiredMsg{slot: toast.Slot, id: toast.ID}
	})
}

// errorText picks the user-facing message: application errors carry the
// server's verbatim text, everything else gets the generic fallback.
func errorText(err error) string {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, shared.ErrQueryTooShort) ||
		errors.Is(err, shared.ErrTooManyChoices) ||
		errors.Is(err, shared.ErrRatingRequired) {
		return err.Error()
	}
	return flow.MsgRequestFailed
}

func (m *Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("SenFlix"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if hint := m.search.Hint(); hint != "" {
		b.WriteString(styles.help.Render(hint))
		b.WriteString("\n")
	} else if m.search.Phase() == flow.SearchDone && m.resultList.Width() != 0 {
		b.WriteString(m.resultList.View())
		b.WriteString("\n")
		b.WriteString(m.renderFlags())
	}

	if toast, ok := m.notifier.Active(flow.SlotGlobal); ok {
		b.WriteString("\n")
		b.WriteString(m.renderToast(toast))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.rate, m.keys.quit}
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

// renderFlags shows the tracked per-movie state for the selected catalog
// result.
func (m *Model) renderFlags() string {
	movie, ok := m.selectedMovie()
	if !ok || !movie.InCatalog() {
		return ""
	}

	parts := []string{}
	for _, action := range []models.Action{models.ActionWatched, models.ActionWatchlist, models.ActionFavorite} {
		value, known := m.toggles.State(movie.ID, action)
		if !known {
			continue
		}
		mark := " "
		if value {
			mark = "x"
		}
		label := fmt.Sprintf("[%s] %s", mark, action)
		if m.toggles.Pending(movie.ID, action) {
			label = styles.warn.Render(label)
		}
		parts = append(parts, label)
	}
	if len(parts) == 0 {
		return ""
	}
	return styles.help.Render(strings.Join(parts, "  "))
}

func (m *Model) renderWizard() string {
	if m.wizard == nil {
		return ""
	}

	var b strings.Builder
	step := m.wizard.Step()
	b.WriteString(styles.title.Render(fmt.Sprintf("Add Movie - Step %d/%d: %s", int(step), flow.TotalSteps, step)))
	b.WriteString("\n")

	switch step {
	case flow.StepConfirm:
		b.WriteString(m.renderConfirmStep())
	case flow.StepPreferences:
		b.WriteString(m.renderPreferencesStep())
	case flow.StepCategories:
		b.WriteString(m.renderCategoriesStep())
	}

	if toast, ok := m.notifier.Active(flow.SlotModal); ok {
		b.WriteString("\n")
		b.WriteString(m.renderToast(toast))
	}

	forward := "enter: next"
	if m.wizard.AtFinalStep() {
		forward = "enter: save"
		if m.wizard.Submitting() {
			forward = "saving..."
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render(fmt.Sprintf("%s  esc: back", forward)))
	return b.String()
}

func (m *Model) renderConfirmStep() string {
	movie := m.wizard.Selected()
	if movie == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Title:    %s\n", movie.Title))
	if movie.Year != "" {
		b.WriteString(fmt.Sprintf("Year:     %s\n", movie.Year))
	}
	if movie.Director != "" && movie.Director != "N/A" {
		b.WriteString(fmt.Sprintf("Director: %s\n", movie.Director))
	}
	if movie.Actors != "" && movie.Actors != "N/A" {
		b.WriteString(fmt.Sprintf("Actors:   %s\n", movie.Actors))
	}
	if movie.Plot != "" && movie.Plot != "N/A" {
		b.WriteString(fmt.Sprintf("\n%s\n", movie.Plot))
	}
	b.WriteString(fmt.Sprintf("\nPoster:   %s\n", movie.PosterURL()))
	return b.String()
}

func (m *Model) renderPreferencesStep() string {
	prefs := m.wizard.Preferences()

	mark := func(v bool) string {
		if v {
			return "x"
		}
		return " "
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] Watched (ctrl+w)   [%s] Watchlist (ctrl+l)   [%s] Favorite (ctrl+f)\n\n",
		mark(prefs.Watched), mark(prefs.Watchlist), mark(prefs.Favorite)))
	b.WriteString(fmt.Sprintf("Rating: %s  (left/right)\n\n", renderStars(prefs.Rating)))
	b.WriteString(m.comment.View())
	return b.String()
}

func (m *Model) renderCategoriesStep() string {
	if m.categoryList.Width() == 0 {
		return styles.help.Render("Loading categories...")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Selected %d/%d (space to toggle)\n\n", len(m.wizard.Categories()), models.MaxCategories))
	b.WriteString(m.categoryList.View())
	return b.String()
}

func (m *Model) renderRating() string {
	if m.rating == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("Rate '%s'", m.rating.Title())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Rating: %s  (left/right)\n\n", renderStars(m.rating.Rating())))
	b.WriteString(m.comment.View())

	if toast, ok := m.notifier.Active(flow.SlotModal); ok {
		b.WriteString("\n\n")
		b.WriteString(m.renderToast(toast))
	}

	submit := "enter: save"
	if m.rating.Submitting() {
		submit = "saving..."
	}
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render(fmt.Sprintf("%s  esc: cancel", submit)))
	return b.String()
}

func (m *Model) renderToast(toast flow.Toast) string {
	switch toast.Level {
	case flow.ToastSuccess:
		return styles.ok.Render(toast.Message)
	case flow.ToastError:
		return styles.err.Render(toast.Message)
	default:
		return styles.help.Render(toast.Message)
	}
}

func renderStars(n int) string {
	if n == 0 {
		return styles.help.Render("not rated")
	}
	return styles.star.Render(strings.Repeat("★", n) + strings.Repeat("☆", models.RatingMax-n))
}
