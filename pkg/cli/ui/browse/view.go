package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"

	"github.com/mergington/activities/pkg/ui/asciiart"
)

const (
	panelWidth       = 44
	descriptionWidth = 40
)

// View renders the full screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var view strings.Builder

	view.WriteString(m.renderHeader())
	view.WriteString("\n")

	if banner := m.renderStatus(); banner != "" {
		view.WriteString(banner)
		view.WriteString("\n")
	}

	view.WriteString(m.renderBody())
	view.WriteString("\n")

	if m.confirm != nil {
		view.WriteString(m.renderConfirm())
		view.WriteString("\n")
	}

	view.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return view.String()
}

func (m *Model) renderHeader() string {
	header := logoStyle.Render(asciiart.Logo()) + "\n" +
		taglineStyle.Render(asciiart.Tagline())

	if m.pending > 0 {
		header += " " + m.spinner.View()
	}

	return header
}

// renderStatus renders the transient status banner, or nothing while it is
// hidden.
func (m *Model) renderStatus() string {
	if !m.status.visible {
		return ""
	}

	if m.status.kind == statusError {
		return errorBannerStyle.Render(m.status.text)
	}

	return successBannerStyle.Render(m.status.text)
}

func (m *Model) renderBody() string {
	if m.loadFailed {
		return noticeStyle.Render(loadFailedText)
	}

	if !m.loaded {
		return dimStyle.Render("Loading activities...")
	}

	left := m.renderActivityList()
	right := m.renderDetail()

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderActivityList renders the activity names with remaining capacity.
func (m *Model) renderActivityList() string {
	var list strings.Builder

	list.WriteString(panelTitleStyle.Render("Activities"))
	list.WriteString("\n")

	if len(m.names) == 0 {
		list.WriteString(dimStyle.Render("No activities available"))

		return panelStyle.Width(panelWidth).Render(list.String())
	}

	for index, name := range m.names {
		activity := m.roster[name]
		line := fmt.Sprintf("%s (%d spots left)", name, activity.SpotsLeft())

		if index == m.cursor {
			marker := "> "
			if m.focus == focusActivities {
				line = selectedStyle.Render(line)
			}

			list.WriteString(marker + line)
		} else {
			list.WriteString("  " + line)
		}

		list.WriteString("\n")
	}

	return panelStyle.Width(panelWidth).Render(strings.TrimRight(list.String(), "\n"))
}

// renderDetail renders the selected activity's description, schedule,
// participants, and the signup form when it is open.
func (m *Model) renderDetail() string {
	name, ok := m.selectedActivity()
	if !ok {
		return ""
	}

	activity := m.roster[name]

	var detail strings.Builder

	detail.WriteString(panelTitleStyle.Render(name))
	detail.WriteString("\n")
	detail.WriteString(wordwrap.WrapString(activity.Description, descriptionWidth))
	detail.WriteString("\n\n")
	detail.WriteString(dimStyle.Render("Schedule: ") + activity.Schedule)
	detail.WriteString("\n")
	detail.WriteString(dimStyle.Render(fmt.Sprintf(
		"Capacity: %d/%d", len(activity.Participants), activity.MaxParticipants,
	)))
	detail.WriteString("\n\n")
	detail.WriteString(m.renderParticipants(activity.Participants))

	if m.focus == focusForm {
		detail.WriteString("\n\n")
		detail.WriteString(panelTitleStyle.Render("Sign up"))
		detail.WriteString("\n")
		detail.WriteString(inputStyle.Render(m.emailInput.View()))
	}

	return panelStyle.Width(panelWidth).Render(detail.String())
}

func (m *Model) renderParticipants(participants []string) string {
	if len(participants) == 0 {
		return dimStyle.Render("No participants yet")
	}

	var list strings.Builder

	list.WriteString(panelTitleStyle.Render("Participants"))
	list.WriteString("\n")

	for index, email := range participants {
		line := email

		if m.focus == focusParticipants && index == m.participantCursor {
			list.WriteString("> " + selectedStyle.Render(line))
		} else {
			list.WriteString("  " + line)
		}

		if index < len(participants)-1 {
			list.WriteString("\n")
		}
	}

	return list.String()
}

// renderConfirm renders the unregister confirmation modal.
func (m *Model) renderConfirm() string {
	prompt := fmt.Sprintf(
		"Remove %s from %s?\n\n%s",
		m.confirm.email,
		m.confirm.activity,
		dimStyle.Render("y: confirm  n: cancel"),
	)

	return modalStyle.Render(prompt)
}
