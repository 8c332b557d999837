package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"crmquest/internal/banner"
)

type Options struct {
	BannerTTL time.Duration
	Locale    language.Tag
}

func RunBoard(ctx context.Context, svc Service, opts Options, out io.Writer) error {
	var p *tea.Program
	b := banner.New(opts.BannerTTL, func(text string) {
		if p != nil {
			p.Send(bannerMsg{text: text})
		}
	})
	defer b.Stop()

	m := newBoardModel(ctx, svc, b, opts.Locale)
	p = tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
