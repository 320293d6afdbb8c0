// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/thumbgrab/thumbgrab/download"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/log"
	"github.com/thumbgrab/thumbgrab/where"
	"github.com/thumbgrab/thumbgrab/youtube"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	session, ok := options.Session.Get()
	if !ok {
		session = gallery.NewDefault()
		defer session.Close()
	}

	// Step 1: Resolve the link and probe every tier.
	outcome := session.Submit(ctx, options.URL)
	output := &Output{URL: options.URL, ID: outcome.Ticket.ID}
	if outcome.Result != nil {
		output.Batch = outcome.Result.Batch
	}

	if outcome.Err != nil {
		err := fmt.Errorf("%s: %w", outcome.Message(), outcome.Err)

		// A batch where every tier is absent still reports what was checked.
		if options.All && outcome.Result != nil {
			output.Thumbnails = outcome.Result.Thumbnails
		}

		var werr error
		if options.Json {
			output.Error = outcome.Message()
			werr = writeJson(options.Out, output)
		} else if len(output.Thumbnails) > 0 {
			werr = writePlain(options, output)
		}
		if werr != nil {
			log.Error(werr)
		}

		return err
	}

	// Step 2: Narrow the candidates down.
	thumbs := outcome.Thumbnails()
	if options.All {
		thumbs = outcome.Result.Thumbnails
	}
	if options.Tiers.IsPresent() {
		thumbs = options.Tiers.MustGet()(thumbs)
	}
	output.Thumbnails = thumbs

	// Step 3: Save the existing ones if asked to.
	if options.Download {
		dir := options.Dir
		if dir == "" {
			dir = where.Downloads()
		}

		for _, thumb := range thumbs {
			if !thumb.Exists {
				continue
			}

			path, err := download.Save(ctx, thumb, outcome.Ticket.ID, dir)
			if err != nil {
				return err
			}
			output.Saved = append(output.Saved, path)
		}
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	return writePlain(options, output)
}

func writePlain(options *Options, output *Output) error {
	if options.Download {
		for _, path := range output.Saved {
			if _, err := fmt.Fprintln(options.Out, path); err != nil {
				return err
			}
		}
		return nil
	}

	for _, thumb := range output.Thumbnails {
		var err error
		if options.All {
			_, err = fmt.Fprintf(options.Out, "%s\t%s\t%s\n", thumb.Tier, presence(thumb), thumb.URL)
		} else {
			_, err = fmt.Fprintln(options.Out, thumb.URL)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func presence(thumb youtube.Thumbnail) string {
	if thumb.Exists {
		return "exists"
	}
	return "absent"
}
