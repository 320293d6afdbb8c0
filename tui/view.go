package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/icon"
	"github.com/thumbgrab/thumbgrab/style"
	"github.com/thumbgrab/thumbgrab/youtube"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

const footer = "This tool doesn't store any data or use YouTube's API."

var tutorialExamples = []string{
	"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	"https://youtu.be/dQw4w9WgXcQ",
	"https://m.youtube.com/watch?v=dQw4w9WgXcQ",
}

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case inputState:
		output = b.viewInput()
	case loadingState:
		output = b.viewLoading()
	case galleryState:
		output = b.viewGallery()
	case detailState:
		output = b.viewDetail()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output, b.palette())
}

func (b *statefulBubble) viewInput() string {
	p := b.palette()
	lines := []string{
		p.Title("YouTube Thumbnail Downloader"),
		"",
		style.Faint("Get every available thumbnail of a video in one go."),
		"",
		b.inputC.View(),
	}

	if b.inputError != "" {
		lines = append(lines, "", icon.Get(icon.Fail)+" "+style.Fg(p.Error)(b.inputError))
	}

	if b.showTutorial {
		lines = append(lines, "", b.viewTutorial())
	}

	lines = append(lines, "", style.Italic(footer))
	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewTutorial() string {
	p := b.palette()
	steps := []string{
		style.Bold("How to use"),
		"",
		"1. Copy the link of a YouTube video",
		"2. Paste it above and press enter",
		"3. Pick a thumbnail to copy, download or zoom",
		"",
		style.Bold("Links that work"),
	}

	for _, example := range tutorialExamples {
		steps = append(steps, icon.Get(icon.Link)+" "+p.Hi(example))
	}

	return p.Panel().Render(strings.Join(steps, "\n"))
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			b.palette().Title("YouTube Thumbnail Downloader"),
			"",
			b.spinnerC.View() + " Processing...",
			"",
			style.Faint(fmt.Sprintf("Checking %d thumbnail sizes", len(youtube.Tiers))),
		},
	)
}

func (b *statefulBubble) viewGallery() string {
	return listExtraPaddingStyle.Render(b.galleryC.View())
}

func (b *statefulBubble) viewDetail() string {
	p := b.palette()
	thumb, ok := b.selectedThumbnail().Get()
	if !ok {
		return b.renderLines(true, []string{p.Title("Nothing selected")})
	}

	label := thumb.Label
	if tier, copied := b.copied.Get(); copied && tier == thumb.Tier {
		label += " " + (&listItem{palette: p}).getMark()
	}

	field := func(name, value string) string {
		return style.Faint(fmt.Sprintf("%-9s", name)) + " " + value
	}

	details := []string{
		field("Tier", thumb.Tier.File()),
		field("URL", p.Hi(thumb.URL)),
		field("Saves as", youtube.FileName(b.id, thumb.Tier)),
		field("Status", fmt.Sprintf("%d", thumb.Status)),
	}

	body := strings.Join(details, "\n")
	panel := p.Panel()
	if b.width > 8 {
		body = wrap.String(body, b.width-6)
		panel = panel.Width(b.width - 2)
	}

	return b.renderLines(
		true,
		[]string{
			p.Title(string(b.id)),
			"",
			icon.Get(icon.Image) + " " + style.Bold(label) + " " + style.Tag(p.Base, p.Second)(thumb.Tier.File()),
			"",
			panel.Render(body),
		},
	)
}

func (b *statefulBubble) viewError() string {
	p := b.palette()
	errorBody := style.Fg(p.Error)(gallery.MessageProbeFailure)
	var detail string
	if b.lastError != nil && b.width > 0 {
		detail = style.Faint(wrap.String(b.lastError.Error(), b.width))
	} else if b.lastError != nil {
		detail = style.Faint(b.lastError.Error())
	}

	return b.renderLines(
		true,
		[]string{
			p.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " " + errorBody,
			"",
			detail,
			"",
			style.Faint("Press enter to try again."),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
