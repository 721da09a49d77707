package page

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/3-lines-studio/launchboard/internal/core"
	"github.com/3-lines-studio/launchboard/internal/types"
)

const (
	DefaultTitle = "SpaceX Launches"
	Heading      = "SpaceX Launches"
	Description  = "The 10 latest SpaceX launches..."
	FooterHref   = "https://vercel.com?utm_source=create-next-app&utm_medium=default-template&utm_campaign=create-next-app"
)

type Data struct {
	Title          string
	Heading        string
	Description    string
	StylesheetHref string
	FooterHref     string
	Cards          []core.Card
}

type Input struct {
	Launches       []types.Launch
	StylesheetHref string
}

type Options struct {
	Title    string
	Location *time.Location
}

type Renderer struct {
	logger *zap.Logger
	title  string
	loc    *time.Location
}

func NewRenderer(logger *zap.Logger, opts Options) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	return &Renderer{
		logger: logger,
		title:  title,
		loc:    loc,
	}
}

// Render writes the launches page. Data problems never fail a render; only
// template or writer errors do.
func (r *Renderer) Render(w io.Writer, input Input) error {
	r.logger.Debug("rendering launches",
		zap.Int("count", len(input.Launches)),
		zap.Any("launches", input.Launches),
	)

	data := Data{
		Title:          r.title,
		Heading:        Heading,
		Description:    Description,
		StylesheetHref: input.StylesheetHref,
		FooterHref:     FooterHref,
		Cards:          core.BuildCards(input.Launches, r.loc),
	}

	var buf bytes.Buffer
	if err := PageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	return nil
}

func (r *Renderer) RenderString(input Input) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
