package dashboard

import "github.com/charmbracelet/bubbles/help"

// HelpBindings returns the help.KeyMap shown in the help bar.
func HelpBindings() help.KeyMap {
	return BrowseKeyMap()
}
