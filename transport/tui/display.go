package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	boardPage = "board"
	modalPage = "modal"

	okButton = "OK"
)

// Display - terminal surface with a 3x3 grid of selectable cells, a status line and a modal dialog.
// Every method except Run and Stop must be called from the tview event loop.
type Display struct {
	logger *slog.Logger

	app    *tview.Application
	pages  *tview.Pages
	table  *tview.Table
	status *tview.TextView

	onActivate func(row, col int)
	modal      *tview.Modal
	modalOpen  bool
	// pending board updates, applied once the modal is dismissed
	pending []func()
}

func New(logger *slog.Logger, title string) *Display {
	that := &Display{
		logger: logger.With("component", "tui"),
		app:    tview.NewApplication(),
		table:  tview.NewTable(),
		status: tview.NewTextView(),
	}

	that.table.SetBorders(true).SetSelectable(true, true)
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			that.table.SetCell(row, col, that.newCell(row, col))
		}
	}
	that.table.SetSelectedFunc(that.activate)

	that.status.SetTextAlign(tview.AlignCenter)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.table, 0, 1, true).
		AddItem(that.status, 1, 0, false)
	layout.SetBorder(true).SetTitle(" " + title + " ")

	that.pages = tview.NewPages().AddPage(boardPage, layout, true, true)

	that.app.SetRoot(that.pages, true).
		EnableMouse(true).
		SetInputCapture(that.captureInput)

	return that
}

// OnActivate - registers the handler called with the row and column of an activated cell.
func (that *Display) OnActivate(handler func(row, col int)) {
	that.onActivate = handler
}

func (that *Display) RenderCell(row, col int, text string) {
	that.apply(func() {
		that.table.GetCell(row, col).SetText(label(text))
	})
}

func (that *Display) ClearAll() {
	that.apply(func() {
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				that.table.GetCell(row, col).SetText(label(""))
			}
		}
	})
}

func (that *Display) RenderTurn(player entity.Mark) {
	that.apply(func() {
		that.status.SetText(fmt.Sprintf("Player %s's turn", player))
	})
}

// apply - runs the update now, or after the modal is dismissed so the finished board stays visible behind it.
func (that *Display) apply(update func()) {
	if that.modalOpen {
		that.pending = append(that.pending, update)
		return
	}

	update()
}

// ShowModal - layers a dialog over the board. The board accepts no activations until it is dismissed.
func (that *Display) ShowModal(title, message string) {
	that.modal = tview.NewModal().
		SetText(title + "\n\n" + message).
		AddButtons([]string{okButton}).
		SetDoneFunc(func(_ int, _ string) {
			that.dismissModal()
		})

	that.modalOpen = true
	that.pages.AddPage(modalPage, that.modal, true, true)
	that.app.SetFocus(that.modal)

	that.logger.Debug("modal shown", "title", title, "message", message)
}

func (that *Display) dismissModal() {
	that.pages.RemovePage(modalPage)
	that.modal = nil
	that.modalOpen = false
	that.app.SetFocus(that.table)

	for _, update := range that.pending {
		update()
	}
	that.pending = nil
}

// Run - starts the event loop and blocks until the user quits or ctx is done.
func (that *Display) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			that.Stop()
		case <-done:
		}
	}()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("ui event loop failed: %w", err)
	}

	return nil
}

func (that *Display) Stop() {
	that.app.Stop()
}

func (that *Display) activate(row, col int) {
	if that.modalOpen || that.onActivate == nil {
		return
	}

	that.logger.Debug("cell activated", "row", row, "col", col)
	that.onActivate(row, col)
}

func (that *Display) newCell(row, col int) *tview.TableCell {
	return tview.NewTableCell(label("")).
		SetAlign(tview.AlignCenter).
		SetExpansion(1).
		SetClickedFunc(func() bool {
			that.activate(row, col)
			return false
		})
}

func (that *Display) captureInput(event *tcell.EventKey) *tcell.EventKey {
	if that.modalOpen {
		return event
	}

	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		that.Stop()
		return nil
	}

	return event
}

// label - pads the mark so empty cells keep their width.
func label(text string) string {
	if text == "" {
		text = " "
	}

	return "  " + text + "  "
}
