package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"DesiresAfterDuties/pkg/animation"
	"DesiresAfterDuties/pkg/survey"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions configures Run.
type RunOptions struct {
	Options
	// AnimationInterval is the title frame period; zero uses
	// animation.DefaultInterval.
	AnimationInterval time.Duration
	AltScreen         bool
}

// quitKeyFilter is a program-level filter that catches quit keys even if
// the model stops handling them. It force-exits on the third consecutive
// Ctrl+C.
func quitKeyFilter() func(tea.Model, tea.Msg) tea.Msg {
	ctrlCCount := 0
	return func(m tea.Model, msg tea.Msg) tea.Msg {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.Type {
			case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyCtrlBackslash:
				ctrlCCount++
				if ctrlCCount >= 3 {
					fmt.Print("\033[?25h\033[?1049l")
					fmt.Fprintln(os.Stderr, "\nForce quit.")
					os.Exit(1)
				}
			default:
				ctrlCCount = 0
			}
		}
		return msg
	}
}

// Run shows the survey until the user quits or ctx is cancelled. The title
// animation runs for exactly as long as the program does.
func Run(ctx context.Context, controller *survey.Controller, gradient *animation.Gradient, opts RunOptions) error {
	programOpts := []tea.ProgramOption{
		tea.WithFilter(quitKeyFilter()),
		tea.WithContext(ctx),
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(controller, gradient, opts.Options), programOpts...)

	interval := opts.AnimationInterval
	if interval <= 0 {
		interval = animation.DefaultInterval
	}
	stop := animation.Start(ctx, interval, func() {
		p.Send(frameMsg{})
	})
	defer stop()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
