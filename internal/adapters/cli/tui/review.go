package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
	"github.com/gxwechsler/yt-transcriber/internal/naming"
)

// ReviewAction represents user actions in the review table
type ReviewAction string

const (
	ActionNone    ReviewAction = ""
	ActionProcess ReviewAction = "process"
	ActionCancel  ReviewAction = "cancel"
)

// reviewColumn is an editable column in the review table
type reviewColumn int

const (
	colAuthor reviewColumn = iota
	colTopic
	colYear
)

var columnNames = [...]string{"Author", "Topic", "Year"}

const (
	titleColWidth  = 34
	authorColWidth = 20
	topicColWidth  = 30
	yearColWidth   = 4
)

// ReviewModel is the bubbletea model for the naming review table. Each
// fetched video is a row; the author, topic, and year cells are editable
// inline before processing.
type ReviewModel struct {
	videos []*domain.VideoMeta
	maxLen int
	cursor int
	column reviewColumn

	editing bool
	input   textinput.Model

	action ReviewAction

	// Menu items are after video rows: Process, Cancel
	menuStart int
}

// NewReviewModel creates a review table over the fetched videos. maxLen
// is the configured filename length cap used for the preview line.
func NewReviewModel(videos []*domain.VideoMeta, maxLen int) ReviewModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100

	if maxLen <= 0 {
		maxLen = naming.DefaultMaxLength
	}

	return ReviewModel{
		videos:    videos,
		maxLen:    maxLen,
		column:    colAuthor,
		input:     ti,
		menuStart: len(videos),
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}

func (m ReviewModel) totalItems() int {
	return len(m.videos) + 2 // Process + Cancel
}

func (m ReviewModel) cellValue(video *domain.VideoMeta) string {
	switch m.column {
	case colAuthor:
		return video.ProposedAuthor
	case colTopic:
		return video.ProposedTopic
	default:
		return video.ProposedYear
	}
}

func (m ReviewModel) setCell(video *domain.VideoMeta, value string) {
	value = strings.TrimSpace(value)
	switch m.column {
	case colAuthor:
		video.ProposedAuthor = value
	case colTopic:
		video.ProposedTopic = value
	case colYear:
		video.ProposedYear = value
	}
}

func (m ReviewModel) selectedCount() int {
	count := 0
	for _, v := range m.videos {
		if v.Selected {
			count++
		}
	}
	return count
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEditing(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.totalItems()-1 {
				m.cursor++
			}
		case "left", "h":
			if m.column > colAuthor {
				m.column--
			}
		case "right", "l", "tab":
			if m.column < colYear {
				m.column++
			} else if msg.String() == "tab" {
				m.column = colAuthor
			}
		case " ", "x":
			if m.cursor < len(m.videos) {
				m.videos[m.cursor].Selected = !m.videos[m.cursor].Selected
			}
		case "a":
			for _, v := range m.videos {
				v.Selected = true
			}
		case "n":
			for _, v := range m.videos {
				v.Selected = false
			}
		case "e", "enter":
			if m.cursor >= m.menuStart {
				if msg.String() == "enter" {
					return m.selectMenuItem()
				}
				break
			}
			m.editing = true
			m.input.SetValue(m.cellValue(m.videos[m.cursor]))
			m.input.CursorEnd()
			m.input.Focus()
		case "q", "ctrl+c", "esc":
			m.action = ActionCancel
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ReviewModel) selectMenuItem() (tea.Model, tea.Cmd) {
	switch m.cursor - m.menuStart {
	case 0:
		if m.selectedCount() > 0 {
			m.action = ActionProcess
			return m, tea.Quit
		}
	case 1:
		m.action = ActionCancel
		return m, tea.Quit
	}
	return m, nil
}

func (m ReviewModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.setCell(m.videos[m.cursor], m.input.Value())
			m.editing = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.editing = false
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ReviewModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Review naming:"))
	sb.WriteString("\n\n")

	// Header: highlight the active column
	sb.WriteString(fmt.Sprintf("      %-*s  ", titleColWidth, "Title"))
	widths := [...]int{authorColWidth, topicColWidth, yearColWidth}
	for col, name := range columnNames {
		style := normalStyle
		if reviewColumn(col) == m.column {
			style = titleStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("%-*s", widths[col], name)))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")

	for i, video := range m.videos {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checkbox := "[ ]"
		style := uncheckedStyle
		if video.Selected {
			checkbox = "[x]"
			style = checkedStyle
		}

		cells := [...]string{
			fmt.Sprintf("%-*s", authorColWidth, Truncate(video.ProposedAuthor, authorColWidth)),
			fmt.Sprintf("%-*s", topicColWidth, Truncate(video.ProposedTopic, topicColWidth)),
			fmt.Sprintf("%-*s", yearColWidth, video.ProposedYear),
		}
		if i == m.cursor {
			if m.editing {
				cells[m.column] = m.input.View()
			} else {
				cells[m.column] = editStyle.Render(cells[m.column])
			}
		}

		line := fmt.Sprintf("%s%s %-*s  %s  %s  %s",
			cursor, checkbox,
			titleColWidth, Truncate(video.Title, titleColWidth),
			cells[0], cells[1], cells[2])
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	// Filename preview for the cursor row
	if m.cursor < len(m.videos) {
		v := m.videos[m.cursor]
		name := naming.BuildFilename(v.ProposedAuthor, v.ProposedTopic, v.ProposedYear, m.maxLen)
		sb.WriteString("\n  → " + naming.Sanitize(v.ProposedAuthor, 50) + "/" + name + ".md\n")
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString("────────────────────────────────────────────────────────────────\n")

	menuItems := []string{
		fmt.Sprintf("Process %d selected", m.selectedCount()),
		"Cancel",
	}
	for i, item := range menuItems {
		cursor := "  "
		if m.cursor == m.menuStart+i {
			cursor = "> "
		}
		sb.WriteString(fmt.Sprintf("%s[%s]\n", cursor, item))
	}

	if m.editing {
		sb.WriteString("\n(enter=save, esc=discard)\n")
	} else {
		sb.WriteString("\n(arrows=move, e=edit cell, space=toggle, a=all, n=none, enter=confirm, q=cancel)\n")
	}

	return sb.String()
}

// Action returns what action the user took
func (m ReviewModel) Action() ReviewAction {
	return m.action
}

// RunReview displays the review table and reports whether the user chose
// to process. Edits are applied directly to the videos.
func RunReview(videos []*domain.VideoMeta, maxLen int) (ReviewAction, error) {
	model := NewReviewModel(videos, maxLen)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return ActionCancel, err
	}

	return finalModel.(ReviewModel).Action(), nil
}
