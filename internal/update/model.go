package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"

	"github.com/williiamwang/FlowPomodoro/internal/model"
	"github.com/williiamwang/FlowPomodoro/internal/notify"
	"github.com/williiamwang/FlowPomodoro/internal/quotes"
	"github.com/williiamwang/FlowPomodoro/internal/review"
	"github.com/williiamwang/FlowPomodoro/internal/storage"
	"github.com/williiamwang/FlowPomodoro/internal/tasks"
	"github.com/williiamwang/FlowPomodoro/internal/timer"
)

type View string

const (
	ViewTimer     View = "Timer"
	ViewTasks     View = "Tasks"
	ViewSettings  View = "Settings"
	ViewBreakdown View = "Breakdown"
	ViewReview    View = "Review"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Timer    string
	Tasks    string
	Settings string
	Quit     string
}

// AssistantService is the remote companion surface the update loop needs.
// Both methods are total: implementations substitute local fallbacks on
// any failure.
type AssistantService interface {
	quotes.Service
	Breakdown(ctx context.Context, goal string, lang model.Language) []string
}

type TasksState struct {
	Cursor  int
	Capture bool
	Editing bool
	EditID  string
	Sort    tasks.SortDirection
}

type SettingsState struct {
	FieldIndex int
	Fields     [3]string
	Err        string
}

type BreakdownState struct {
	Busy         bool
	Proposals    []string
	Err          string
	AcceptedOnce bool
}

type ReviewState struct {
	Active bool
	Window review.Window
	Day    string
	Quote  string
}

type Model struct {
	CurrentView View
	Language    model.Language
	Theme       model.Theme

	AssistantName string
	AssistantRole string

	Engine     *timer.Engine
	Tasks      *tasks.Store
	Quotes     *quotes.Cache
	Assistant  AssistantService
	Dispatcher *notify.Dispatcher
	Gate       *review.Gate

	TasksUI   TasksState
	Settings  SettingsState
	Breakdown BreakdownState
	Review    ReviewState

	Status   StatusBar
	Notice   notify.Notice
	Keys     GlobalKeyMap
	AudioOn  bool
	Quitting bool

	// Completed work sessions since the app started, for the evening
	// summary. Unlike the engine's cycle counter this never resets.
	SessionWorkCount int

	refreshingQuotes bool
	tickSeq          int

	pollC <-chan time.Time
	state *storage.StateStore
	now   func() time.Time
	log   zerolog.Logger

	quickAddInput textinput.Model
	editInput     textinput.Model
	goalInput     textinput.Model
}

// TimerTickMsg drives the countdown. Seq identifies the tick chain it
// belongs to; pausing and restarting starts a new chain, and ticks from
// an abandoned chain are dropped so the clock never counts double.
type TimerTickMsg struct {
	Seq int
}

type PollMsg struct {
	At time.Time
}

type DismissNoticeMsg struct {
	Seq int
}

type QuoteBatchMsg struct {
	Mode  model.Mode
	Batch []string
}

type BreakdownResultMsg struct {
	Tasks []string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

// Deps carries everything the model is wired to. Every field is
// optional; a nil field degrades to an inert default so tests can build
// partial models.
type Deps struct {
	State     *storage.StateStore
	Assistant AssistantService
	Speaker   notify.Speaker
	Player    timer.Player
	Poll      <-chan time.Time
	Audio     bool
	Logger    zerolog.Logger
	Now       func() time.Time
}

func NewModel(deps Deps) Model {
	ctx := context.Background()
	nowFn := deps.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	m := Model{
		CurrentView:   ViewTimer,
		Language:      model.LanguageZH,
		Theme:         model.ThemeDark,
		AssistantName: storage.DefaultAssistantName,
		AudioOn:       deps.Audio,
		Keys: GlobalKeyMap{
			Timer:    "1",
			Tasks:    "2",
			Settings: "3",
			Quit:     "ctrl+c",
		},
		pollC: deps.Poll,
		state: deps.State,
		now:   nowFn,
		log:   deps.Logger,
	}

	settings := model.DefaultModeMinutes()
	var initialTasks []model.Task
	pools := model.QuotePools{}
	var markers [4]string
	if m.state != nil {
		m.Theme = m.state.Theme(ctx)
		m.Language = m.state.Language(ctx)
		m.AssistantName = m.state.AssistantName(ctx)
		settings = m.state.Settings(ctx)
		initialTasks = m.state.Tasks(ctx)
		pools = m.state.Quotes(ctx, quotes.DefaultPools())
		markers = [4]string{
			m.state.Marker(ctx, storage.KeyMorningShown),
			m.state.Marker(ctx, storage.KeyEveningShown),
			m.state.Marker(ctx, storage.KeySkipMorningDate),
			m.state.Marker(ctx, storage.KeySkipEveningDate),
		}
	}
	m.AssistantRole = storage.DefaultAssistantRole(m.Language)
	if m.state != nil {
		m.AssistantRole = m.state.AssistantRole(ctx, m.Language)
	}

	player := deps.Player
	if !deps.Audio {
		player = timer.NoopPlayer{}
	}
	m.Engine = timer.NewEngine(settings, player)
	m.syncSettingsFields()

	taskOpts := []tasks.Option{tasks.WithClock(nowFn)}
	quoteOpts := []quotes.Option{}
	gateOpts := []review.GateOption{
		review.WithMarkers(markers[0], markers[1], markers[2], markers[3]),
	}
	if m.state != nil {
		st := m.state
		taskOpts = append(taskOpts, tasks.WithCommit(func(list []model.Task) {
			st.SaveTasks(context.Background(), list)
		}))
		quoteOpts = append(quoteOpts, quotes.WithCommit(func(pools model.QuotePools) {
			st.SaveQuotes(context.Background(), pools)
		}))
		gateOpts = append(gateOpts,
			review.WithShownFunc(func(w review.Window, day string) {
				st.SaveMarker(context.Background(), shownKey(w), day)
			}),
			review.WithSkipFunc(func(w review.Window, day string) {
				st.SaveMarker(context.Background(), skipKey(w), day)
			}),
		)
	}
	m.Tasks = tasks.NewStore(initialTasks, taskOpts...)
	m.Quotes = quotes.NewCache(pools, quoteOpts...)
	m.Gate = review.NewGate(gateOpts...)

	m.Assistant = deps.Assistant
	m.Dispatcher = notify.NewDispatcher(deps.Speaker)

	m.Quotes.PickRandom(m.Engine.Mode())
	m.initInputs()
	return m
}

func (m *Model) initInputs() {
	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.editInput = textinput.New()
	m.editInput.Prompt = "title> "
	m.editInput.CharLimit = 256
	m.editInput.Width = 42

	m.goalInput = textinput.New()
	m.goalInput.Prompt = "goal> "
	m.goalInput.CharLimit = 256
	m.goalInput.Width = 42
}

func shownKey(w review.Window) string {
	if w == review.WindowEvening {
		return storage.KeyEveningShown
	}
	return storage.KeyMorningShown
}

func skipKey(w review.Window) string {
	if w == review.WindowEvening {
		return storage.KeySkipEveningDate
	}
	return storage.KeySkipMorningDate
}
