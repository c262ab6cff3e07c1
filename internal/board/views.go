package board

import (
	"fmt"
	"strings"

	"tripboard/internal/model"
	"tripboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

const emptyMessage = "Click New Event to create your first point"

var (
	sortActiveStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	sortEnabledStyle  = lipgloss.NewStyle()
	sortDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"})
	sortBarStyle      = lipgloss.NewStyle().MarginBottom(1)
	emptyStyle        = lipgloss.NewStyle().Italic(true).Padding(1, 2)
)

// SortView is the sort control. Disabled keys never reach the callback.
type SortView struct {
	view.Node

	current  model.SortType
	onChange func(model.SortType) error
}

func NewSortView(current model.SortType, onSortTypeChange func(model.SortType) error) *SortView {
	return &SortView{current: current, onChange: onSortTypeChange}
}

func (v *SortView) Current() model.SortType { return v.current }

// Select picks st as if the user chose it.
func (v *SortView) Select(st model.SortType) error {
	if !st.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownSortType, string(st))
	}
	if !st.Enabled() {
		return fmt.Errorf("%w: %s", ErrSortDisabled, st)
	}
	if v.onChange == nil {
		return nil
	}
	return v.onChange(st)
}

func (v *SortView) View() string {
	parts := make([]string, 0, len(model.SortTypes))
	for i, opt := range model.SortTypes {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(string(opt.Type)))
		switch {
		case opt.Type == v.current:
			parts = append(parts, sortActiveStyle.Render("● "+label))
		case opt.Disabled:
			parts = append(parts, sortDisabledStyle.Render("  "+label))
		default:
			parts = append(parts, sortEnabledStyle.Render("○ "+label))
		}
	}
	return sortBarStyle.Render(strings.Join(parts, "   "))
}

// EmptyView replaces the sort control and list when there is nothing to show.
type EmptyView struct {
	view.Node
}

func NewEmptyView() *EmptyView { return &EmptyView{} }

func (v *EmptyView) View() string { return emptyStyle.Render(emptyMessage) }

func newListView(style lipgloss.Style) *view.Container {
	return view.NewContainer(style)
}

// plainItem is the fallback presenter: one unstyled, read-only line per event.
type plainItem struct {
	view.Node

	list  *view.Container
	mount func(view.Component, *view.Container)
	event model.Event
}

func (p *plainItem) Init(ev model.Event) {
	p.event = ev.Clone()
	if !p.Mounted() {
		p.mount(p, p.list)
	}
}

func (p *plainItem) ResetView() {}

func (p *plainItem) Destroy() { view.Remove(p) }

func (p *plainItem) View() string {
	return fmt.Sprintf("%s %s %s", p.event.DateFrom.Format("Jan 02 15:04"), p.event.Type, p.event.Destination)
}
