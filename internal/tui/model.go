// Package tui is the terminal client: today's puzzle in a Bubble Tea program,
// saved to a local store so it can be resumed until midnight.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/kluro/internal/daily"
	"github.com/robalobadob/kluro/internal/game"
	"github.com/robalobadob/kluro/internal/share"
	"github.com/robalobadob/kluro/internal/store"
	"github.com/robalobadob/kluro/internal/words"
)

// LocalPlayer is the player ID the terminal client saves under.
const LocalPlayer = "local"

// Options configures the terminal client.
type Options struct {
	Selector daily.Selector
	Words    *words.List
	Store    store.Store
	PlayerID string // defaults to LocalPlayer
}

// tickMsg drives the countdown and the day rollover.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type modelTUI struct {
	sel   daily.Selector
	words *words.List
	store store.Store
	pid   string

	now    time.Time
	date   string
	record daily.Record
	sess   *game.Session
	saved  store.Saved

	ti     textinput.Model
	status string // last info line
	err    string // last error line

	copyText func(string) error
}

// newModel loads today's game for opt.PlayerID, resuming a game saved today.
func newModel(opt Options) (modelTUI, error) {
	if opt.PlayerID == "" {
		opt.PlayerID = LocalPlayer
	}
	m := modelTUI{
		sel:      opt.Selector,
		words:    opt.Words,
		store:    opt.Store,
		pid:      opt.PlayerID,
		copyText: clipboard.WriteAll,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "your guess..."
	m.ti.Focus()

	if err := m.loadToday(); err != nil {
		return modelTUI{}, err
	}
	return m, nil
}

// loadToday selects today's word and resumes or starts the game.
func (m *modelTUI) loadToday() error {
	m.now = m.sel.Today()
	rec, err := m.sel.ForDate(m.now)
	if err != nil {
		return err
	}
	m.record = rec
	m.date = daily.DateKey(m.now)

	ctx := context.Background()
	saved, err := m.store.Load(ctx, m.pid)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load saved game: %w", err)
	}
	if err == nil && saved.LastPlayedDate == m.date {
		if sess, err := game.Resume(rec.Word, saved.GameState); err == nil {
			m.sess, m.saved = sess, saved
			m.afterLoad()
			return nil
		}
		m.err = "Saved game was unreadable, starting over"
	}

	sess, err := game.New(rec.Word)
	if err != nil {
		return err
	}
	m.sess = sess
	m.saved = store.Saved{LastPlayedDate: m.date, StartedAt: m.now}
	m.afterLoad()
	return m.persist()
}

func (m *modelTUI) afterLoad() {
	m.ti.SetValue("")
	m.ti.CharLimit = m.sess.WordLength()
	if m.sess.State().IsComplete {
		m.ti.Blur()
	} else {
		m.ti.Focus()
	}
}

func (m *modelTUI) persist() error {
	blob, err := m.sess.Serialize()
	if err != nil {
		return err
	}
	m.saved.GameState = blob
	return m.store.Save(context.Background(), m.pid, m.saved)
}

func (m *modelTUI) submit() {
	guess := strings.TrimSpace(m.ti.Value())
	m.status, m.err = "", ""
	if guess == "" {
		return
	}
	if !m.words.Contains(guess) {
		m.err = "Not in word list"
		return
	}
	st, err := m.sess.Submit(guess)
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		m.err = fmt.Sprintf("Guess must be %d letters", m.sess.WordLength())
		return
	case errors.Is(err, game.ErrInvalidCharacters):
		m.err = "Only letters A-Ö are allowed"
		return
	case err != nil:
		m.err = err.Error()
		return
	}
	m.ti.SetValue("")
	if err := m.persist(); err != nil {
		m.err = "Could not save: " + err.Error()
	}
	if st.IsComplete {
		m.ti.Blur()
		if st.IsWon {
			m.status = fmt.Sprintf("Solved in %d/%d!", st.CurrentRow, game.MaxAttempts)
		} else {
			m.status = "The word was " + st.RevealedWord
		}
	}
}

func (m modelTUI) shareText() string {
	return share.Text(m.sess.State(), m.record.DayIndex, m.date)
}

func (m modelTUI) Init() tea.Cmd { return tea.Batch(textinput.Blink, tick()) }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.sel.Today()
		if daily.DateKey(m.now) != m.date {
			if err := m.loadToday(); err != nil {
				m.err = err.Error()
			} else {
				m.status = "A new puzzle is ready"
			}
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if !m.sess.State().IsComplete {
				m.submit()
			}
			return m, nil
		}
		if m.sess.State().IsComplete {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "c":
				if err := m.copyText(m.shareText()); err != nil {
					m.err = "Copy failed: " + err.Error()
				} else {
					m.status = "Copied result to clipboard"
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	st := m.sess.State()

	header := fmt.Sprintf("%s   %s",
		titleStyle.Render(share.Title),
		mutedStyle.Render(fmt.Sprintf("#%d  %s", m.record.DayIndex, m.date)),
	)

	var b strings.Builder
	b.WriteString(header + "\n\n")
	b.WriteString(renderGrid(st, m.sess.WordLength(), m.ti.Value()) + "\n\n")
	b.WriteString(renderKeyboard(st.Keyboard) + "\n\n")

	if st.IsComplete {
		b.WriteString(accentStyle.Render("Next puzzle in "+countdown(daily.UntilNextDay(m.now))) + "\n")
	} else {
		b.WriteString(m.ti.View() + "\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status) + "\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	}

	help := "enter guess • esc quit"
	if st.IsComplete {
		help = "c copy result • q quit"
	}
	b.WriteString(helpStyle.Render(help))
	return panelString(b.String())
}

// countdown formats d as hh:mm:ss.
func countdown(d time.Duration) string {
	s := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

// Run starts the terminal client and blocks until the player quits.
func Run(opt Options) error {
	m, err := newModel(opt)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// ShareText returns the share block for the player's game today, or an error
// when nothing was played yet. It only reads the store.
func ShareText(opt Options) (string, error) {
	if opt.PlayerID == "" {
		opt.PlayerID = LocalPlayer
	}
	now := opt.Selector.Today()
	rec, err := opt.Selector.ForDate(now)
	if err != nil {
		return "", err
	}
	date := daily.DateKey(now)

	saved, err := opt.Store.Load(context.Background(), opt.PlayerID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "", errNotPlayed
	case err != nil:
		return "", fmt.Errorf("load saved game: %w", err)
	case saved.LastPlayedDate != date:
		return "", errNotPlayed
	}
	sess, err := game.Resume(rec.Word, saved.GameState)
	if err != nil {
		return "", err
	}
	st := sess.State()
	if len(st.Grid) == 0 {
		return "", errNotPlayed
	}
	return share.Text(st, rec.DayIndex, date), nil
}

var errNotPlayed = errors.New("no guesses yet today")
