package dashboard

import (
	"fmt"
	"strings"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// browseState manages the contact list and cursor for the left pane.
type browseState struct {
	entries []Entry
	cursor  int
}

func newBrowseState(entries []Entry) browseState {
	return browseState{entries: append([]Entry(nil), entries...)}
}

// move shifts the cursor by delta, wrapping at both ends.
func (bs browseState) move(delta int) browseState {
	n := len(bs.entries)
	if n == 0 {
		return bs
	}
	bs.cursor = ((bs.cursor+delta)%n + n) % n
	return bs
}

// jump places the cursor on the first (top) or last entry.
func (bs browseState) jump(top bool) browseState {
	if len(bs.entries) == 0 {
		return bs
	}
	if top {
		bs.cursor = 0
	} else {
		bs.cursor = len(bs.entries) - 1
	}
	return bs
}

// Selected returns the entry under the cursor.
func (bs browseState) Selected() (Entry, bool) {
	if bs.cursor < 0 || bs.cursor >= len(bs.entries) {
		return Entry{}, false
	}
	return bs.entries[bs.cursor], true
}

// View renders the contact list.
func (bs browseState) View() string {
	if len(bs.entries) == 0 {
		return mutedText.Render("No contacts")
	}

	var b strings.Builder
	for i, e := range bs.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == bs.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(e.Name + " " + CountBadge(len(e.Phones)))
	}
	return b.String()
}

// detailView renders the phone list of e.
func detailView(e Entry) string {
	var b strings.Builder
	b.WriteString(titleText.Render(e.Name))
	b.WriteString("\n\n")
	if len(e.Phones) == 0 {
		b.WriteString(mutedText.Render("No phone numbers"))
		return b.String()
	}
	for i, p := range e.Phones {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(mutedText.Render(fmt.Sprintf("%2d. ", i+1)) + phoneText.Render(p))
	}
	return b.String()
}
