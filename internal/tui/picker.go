package tui

import (
	"strconv"
	"strings"
)

// pickerModel is a single-selection list shown as a scrolling window of
// rows around the cursor.
type pickerModel struct {
	labels []string
	idx    int
	rows   int
	empty  string
}

func newPickerModel(rows int, empty string) pickerModel {
	return pickerModel{rows: rows, empty: empty, idx: -1}
}

// setItems replaces the rows and puts the cursor on selected, clamped to
// the new rows.
func (m pickerModel) setItems(labels []string, selected int) pickerModel {
	m.labels = labels
	switch {
	case len(labels) == 0:
		m.idx = -1
	case selected < 0:
		m.idx = 0
	default:
		m.idx = min(selected, len(labels)-1)
	}
	return m
}

func (m pickerModel) move(delta int) (pickerModel, bool) {
	if len(m.labels) == 0 {
		return m, false
	}
	next := min(max(m.idx+delta, 0), len(m.labels)-1)
	if next == m.idx {
		return m, false
	}
	m.idx = next
	return m, true
}

func (m pickerModel) current() (string, bool) {
	if m.idx < 0 || m.idx >= len(m.labels) {
		return "", false
	}
	return m.labels[m.idx], true
}

func (m pickerModel) View(focused bool) string {
	if len(m.labels) == 0 {
		return "  " + m.empty
	}

	start := 0
	if m.rows > 0 && m.idx >= m.rows {
		start = m.idx - m.rows + 1
	}
	end := len(m.labels)
	if m.rows > 0 {
		end = min(start+m.rows, len(m.labels))
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
			if !focused {
				cursor = "* "
			}
		}
		b.WriteString(cursor)
		b.WriteString(fitText(m.labels[i], 70))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(m.labels) || start > 0 {
		b.WriteString(helpStyle.Render("  (" + strconv.Itoa(m.idx+1) + "/" + strconv.Itoa(len(m.labels)) + ")"))
	}
	return b.String()
}
