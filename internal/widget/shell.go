package widget

import tea "github.com/charmbracelet/bubbletea"

// Shell collects what widgets emit while handling one event: application
// messages for the host and commands for the Bubble Tea runtime.
type Shell struct {
	messages    []tea.Msg
	cmds        []tea.Cmd
	invalidated bool
}

// Publish appends an application message.
func (s *Shell) Publish(msg tea.Msg) {
	s.messages = append(s.messages, msg)
}

// Exec queues a command; nil commands are dropped.
func (s *Shell) Exec(cmd tea.Cmd) {
	if cmd != nil {
		s.cmds = append(s.cmds, cmd)
	}
}

// InvalidateLayout requests a new layout before the next event.
func (s *Shell) InvalidateLayout() {
	s.invalidated = true
}

// IsLayoutInvalid reports whether a widget requested a new layout.
func (s *Shell) IsLayoutInvalid() bool {
	return s.invalidated
}

// Len returns the number of pending messages.
func (s *Shell) Len() int {
	return len(s.messages)
}

// Messages drains the published messages in publication order.
func (s *Shell) Messages() []tea.Msg {
	out := s.messages
	s.messages = nil
	return out
}

// Cmd drains the queued commands into one batch.
func (s *Shell) Cmd() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
