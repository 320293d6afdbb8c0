package inline

import (
	"encoding/json"
	"io"

	"github.com/thumbgrab/thumbgrab/youtube"
)

type Output struct {
	// URL is the link as it was given.
	URL   string          `json:"url"`
	ID    youtube.VideoID `json:"id,omitempty"`
	Batch string          `json:"batch,omitempty"`
	// Thumbnails are ordered from the highest resolution down.
	Thumbnails []youtube.Thumbnail `json:"thumbnails"`
	// Saved lists the files written when downloading.
	Saved []string `json:"saved,omitempty"`
	Error string   `json:"error,omitempty"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Thumbnails == nil {
		output.Thumbnails = []youtube.Thumbnail{}
	}

	data, err := json.Marshal(output)
	if err != nil {
		return err
	}

	_, err = out.Write(append(data, '\n'))
	return err
}
