package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case outcomeMsg:
		return b, tea.Batch(cmd, b.onOutcome(msg.Outcome))
	case copiedMsg:
		return b, tea.Batch(cmd, b.onCopied(msg))
	case uncopyMsg:
		b.onUncopy(msg)
		return b, cmd
	case savedMsg:
		return b, tea.Batch(cmd, b.onSaved(msg))
	case openedMsg:
		return b, tea.Batch(cmd, b.onOpened(msg))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			return b, tea.Batch(cmd, b.onBack())
		}

		// Nothing but cancelling while a batch is running.
		if b.busy {
			return b, cmd
		}

		// Plain letters belong to the text field.
		typing := b.state == inputState && msg.Type == tea.KeyRunes
		if bubblesKey.Matches(msg, b.keymap.theme) && !typing {
			b.toggleTheme()
			return b, cmd
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case inputState:
		stateCmd = b.updateInput(msg)
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case galleryState:
		stateCmd = b.updateGallery(msg)
	case detailState:
		stateCmd = b.updateDetail(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) onBack() tea.Cmd {
	switch b.state {
	case inputState:
		if b.showTutorial {
			b.showTutorial = false
			return nil
		}
		b.inputC.SetValue("")
		b.inputError = ""
		return nil
	case loadingState:
		b.abandon()
	case galleryState:
		b.galleryC.ResetSelected()
	}

	b.previousState()
	if b.state == inputState {
		return b.inputC.Focus()
	}
	return nil
}

func (b *statefulBubble) updateInput(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.submit):
			return b.submit()
		case bubblesKey.Matches(msg, b.keymap.tutorial) && (msg.Type != tea.KeyRunes || b.inputC.Value() == ""):
			b.showTutorial = !b.showTutorial
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return cmd
	}
	return nil
}

func (b *statefulBubble) updateGallery(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.zoom):
			b.newState(detailState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.copyURL):
			return b.copySelected()
		case bubblesKey.Matches(msg, b.keymap.download):
			return b.downloadSelected()
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b.openSelected()
		}
	}

	var cmd tea.Cmd
	b.galleryC, cmd = b.galleryC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) tea.Cmd {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case bubblesKey.Matches(msgKey, b.keymap.copyURL):
		return b.copySelected()
	case bubblesKey.Matches(msgKey, b.keymap.download):
		return b.downloadSelected()
	case bubblesKey.Matches(msgKey, b.keymap.openURL):
		return b.openSelected()
	case bubblesKey.Matches(msgKey, b.keymap.quit):
		return tea.Quit
	}
	return nil
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case bubblesKey.Matches(msgKey, b.keymap.confirm):
		return b.submit()
	case bubblesKey.Matches(msgKey, b.keymap.quit):
		return tea.Quit
	}
	return nil
}
