package bridge

import (
	"context"
	"errors"

	"github.com/ncruces/zenity"
)

var executableFilters = zenity.FileFilters{
	{Name: "Executables", Patterns: []string{"*.exe", "*.app", "*.sh", "*.bat", "*.lnk"}},
	{Name: "All Files", Patterns: []string{"*"}},
}

// DialogPicker opens the native file selection dialog.
type DialogPicker struct {
	Title string
}

func (p DialogPicker) PickFile(ctx context.Context) (string, bool, error) {
	title := p.Title
	if title == "" {
		title = "Select game executable"
	}
	path, err := zenity.SelectFile(zenity.Context(ctx), zenity.Title(title), executableFilters)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}
