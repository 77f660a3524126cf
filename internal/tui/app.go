package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/wikiscroll/internal/browser"
	"github.com/matheuskafuri/wikiscroll/internal/feed"
	"github.com/matheuskafuri/wikiscroll/internal/i18n"
	"github.com/matheuskafuri/wikiscroll/internal/share"
	"github.com/matheuskafuri/wikiscroll/internal/wiki"
)

type mode int

const (
	modeNormal mode = iota
	modeHelp
)

type App struct {
	ctx      context.Context
	feed     *feed.Feed
	sharer   share.Sharer
	opener   func(string) error
	link     wiki.LinkVariant
	prefetch int
	logger   *slog.Logger

	cursor int
	mode   mode

	width  int
	height int

	spinner   spinner.Model
	notice    string
	noticeErr bool
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Context  context.Context
	Feed     *feed.Feed
	Sharer   share.Sharer
	Opener   func(string) error
	Link     wiki.LinkVariant
	Prefetch int
	Logger   *slog.Logger
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opener := opts.Opener
	if opener == nil {
		opener = browser.Open
	}
	sharer := opts.Sharer
	if sharer == nil {
		sharer = share.NewClipboardSharer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		ctx:      ctx,
		feed:     opts.Feed,
		sharer:   sharer,
		opener:   opener,
		link:     opts.Link,
		prefetch: opts.Prefetch,
		logger:   logger,
		spinner:  sp,
	}
}

func (a *App) Init() tea.Cmd {
	return a.maybeLoad()
}

// loadCmd starts a batch unless one is already in flight.
func (a *App) loadCmd() tea.Cmd {
	b, ok := a.feed.Start(a.ctx)
	if !ok {
		return nil
	}
	fd := a.feed
	return tea.Batch(func() tea.Msg {
		return batchDoneMsg{result: fd.Run(b)}
	}, a.spinner.Tick)
}

// maybeLoad is the proximity trigger: it fetches when the cursor is close to
// the end of the list.
func (a *App) maybeLoad() tea.Cmd {
	if !a.feed.NearEnd(a.cursor, a.prefetch) {
		return nil
	}
	return a.loadCmd()
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.opener
	return func() tea.Msg {
		return openDoneMsg{err: open(url)}
	}
}

func (a *App) shareCmd(s wiki.Summary) tea.Cmd {
	sharer := a.sharer
	ctx := a.ctx
	p := share.Payload{Title: s.Title, Text: s.Extract, URL: s.Link(wiki.LinkMobile)}
	return func() tea.Msg {
		return shareDoneMsg{err: sharer.Share(ctx, p)}
	}
}

func (a *App) setNotice(key string, isErr bool) {
	a.notice = i18n.T(a.feed.Language(), key)
	a.noticeErr = isErr
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky notice on any keypress
		a.notice = ""
		a.noticeErr = false
		return a.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return a, a.next()
		case tea.MouseButtonWheelUp:
			a.prev()
		}
		return a, nil

	case batchDoneMsg:
		added, err := a.feed.Complete(msg.result)
		if errors.Is(err, feed.ErrStaleBatch) {
			return a, nil
		}
		if err != nil {
			a.setNotice(i18n.KeyLoadFailed, true)
			return a, nil
		}
		if added > 0 {
			return a, a.maybeLoad()
		}
		return a, nil

	case shareDoneMsg:
		switch {
		case msg.err == nil:
			a.setNotice(i18n.KeyShareCopied, false)
		case share.IsCanceled(msg.err):
		default:
			if !errors.Is(msg.err, share.ErrUnsupported) {
				a.logger.Warn("share failed", slog.Any("error", msg.err))
			}
			a.setNotice(i18n.KeyShareUnsupported, true)
		}
		return a, nil

	case openDoneMsg:
		if msg.err != nil {
			a.logger.Warn("opening browser failed", slog.Any("error", msg.err))
			a.notice = i18n.T(a.feed.Language(), i18n.KeyOpenFailed) + ": " + msg.err.Error()
			a.noticeErr = true
		}
		return a, nil

	case spinner.TickMsg:
		if a.feed.Loading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) next() tea.Cmd {
	if a.cursor < a.feed.Len()-1 {
		a.cursor++
	}
	return a.maybeLoad()
}

func (a *App) prev() {
	if a.cursor > 0 {
		a.cursor--
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.mode == modeHelp {
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeNormal
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down", " ", "pgdown":
		return a, a.next()
	case "k", "up", "pgup":
		a.prev()
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		if n := a.feed.Len(); n > 0 {
			a.cursor = n - 1
		}
		return a, a.maybeLoad()
	case "L", "tab":
		lang := a.feed.ToggleLanguage()
		a.cursor = 0
		a.logger.Debug("language toggled from ui", slog.String("lang", string(lang)))
		return a, a.loadCmd()
	case "o", "enter":
		if s, ok := a.feed.At(a.cursor); ok {
			return a, a.openCmd(s.Link(a.link))
		}
		return a, nil
	case "s":
		if s, ok := a.feed.At(a.cursor); ok {
			return a, a.shareCmd(s)
		}
		return a, nil
	case "r":
		return a, a.loadCmd()
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return logoStyle.Render("Wiki") + logoAccentStyle.Render("Scroll")
	}

	lang := a.feed.Language()

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	total := a.feed.Len()
	header := renderHeader(lang, a.cursor, total, a.width)
	status := renderStatusBar(lang, a.notice, a.noticeErr, a.width)

	bodyHeight := a.height - 2
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	s, ok := a.feed.At(a.cursor)
	switch {
	case !ok && a.feed.Loading():
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			renderSentinel(a.spinner.View(), lang))
	case !ok:
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			loadingTextStyle.Render(i18n.T(lang, i18n.KeyEmpty)))
	default:
		footer := ""
		if a.cursor == total-1 && a.feed.Loading() {
			footer = renderSentinel(a.spinner.View(), lang)
		}
		body = renderCard(s, lang, a.width, bodyHeight, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (a *App) renderHelp() string {
	title := logoStyle.Render("Wiki") + logoAccentStyle.Render("Scroll")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓       Next / previous article\n" +
		"  space, wheel    Scroll the feed\n" +
		"  g/G             First / last loaded article\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter        Read on Wikipedia\n" +
		"  s               Share (copy to clipboard)\n" +
		"  L, tab          Switch language (ko/en)\n" +
		"  r               Load more articles\n\n" +
		dim.Render("General") + "\n" +
		"  ?               Toggle this help\n" +
		"  q, ctrl+c       Quit"

	card := helpCardStyle.Render(strings.TrimRight(help, "\n"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(app.ctx))
	_, err := p.Run()
	// Cancelling the context (e.g. SIGTERM) is a normal exit.
	if errors.Is(err, tea.ErrProgramKilled) && app.ctx.Err() != nil {
		return nil
	}
	return err
}
