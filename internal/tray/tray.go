// Package tray renders the selector as a system tray menu
package tray

import (
	_ "embed"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"fyne.io/systray"

	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/selector"
)

//go:embed assets/icon.png
var defaultIcon []byte

type menuEntry struct {
	item   *systray.MenuItem
	kind   Kind
	action selector.Action
}

// Tray owns the tray icon and runs menu actions one at a time
type Tray struct {
	sel     *selector.Selector
	menu    Menu
	tooltip string
	icon    []byte

	actions  chan func()
	done     chan struct{}
	stopOnce sync.Once

	entries []menuEntry

	// afterAction runs on the dispatcher after every action
	afterAction func()
}

// New creates a tray for sel
func New(sel *selector.Selector, tooltip string) *Tray {
	t := &Tray{
		sel:     sel,
		menu:    BuildMenu(sel),
		tooltip: tooltip,
		icon:    defaultIcon,
		actions: make(chan func()),
		done:    make(chan struct{}),
	}
	t.afterAction = t.refreshChecks
	return t
}

// Run shows the tray icon and blocks until Quit is clicked or the process
// receives SIGINT/SIGTERM.
func (t *Tray) Run() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("Received signal, quitting", "signal", sig)
			systray.Quit()
		case <-t.done:
		}
	}()

	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(t.icon)
	systray.SetTooltip(t.tooltip)

	for _, section := range t.menu.Sections {
		parent := systray.AddMenuItem(section.Title, "")

		if len(section.Items) == 0 {
			placeholder := parent.AddSubMenuItem(section.Placeholder, "")
			placeholder.Disable()
			continue
		}

		for _, action := range section.Items {
			item := parent.AddSubMenuItemCheckbox(action.Label, "", IsChecked(t.sel, section.Kind, action))
			t.entries = append(t.entries, menuEntry{item: item, kind: section.Kind, action: action})
			go t.listen(item, action)
		}
	}

	systray.AddSeparator()
	quit := systray.AddMenuItem(QuitTitle, "Quit tabletray")
	go func() {
		select {
		case <-quit.ClickedCh:
			logger.Info("Quit requested from tray menu")
			systray.Quit()
		case <-t.done:
		}
	}()

	go t.dispatch()
	logger.Info("Tray ready",
		"devices", len(t.sel.Devices()),
		"displays", len(t.sel.Displays()))
}

func (t *Tray) onExit() {
	t.stop()
	logger.Info("Tray stopped")
}

// listen forwards clicks on item to the dispatcher
func (t *Tray) listen(item *systray.MenuItem, action selector.Action) {
	for {
		select {
		case <-item.ClickedCh:
			logger.Debug("Menu item clicked", "label", action.Label)
			if !t.enqueue(action.Run) {
				return
			}
		case <-t.done:
			return
		}
	}
}

// enqueue hands fn to the dispatcher. It returns false once the tray stopped.
func (t *Tray) enqueue(fn func()) bool {
	select {
	case <-t.done:
		return false
	default:
	}

	select {
	case t.actions <- fn:
		return true
	case <-t.done:
		return false
	}
}

// dispatch runs queued actions sequentially until the tray stops
func (t *Tray) dispatch() {
	for {
		select {
		case fn := <-t.actions:
			fn()
			if t.afterAction != nil {
				t.afterAction()
			}
		case <-t.done:
			return
		}
	}
}

func (t *Tray) stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})
}

// refreshChecks moves the check marks to the selected device and the
// current output.
func (t *Tray) refreshChecks() {
	for _, e := range t.entries {
		if IsChecked(t.sel, e.kind, e.action) {
			e.item.Check()
		} else {
			e.item.Uncheck()
		}
	}
}
