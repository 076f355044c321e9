package pipeline

import (
	"encoding/json"

	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/render/vis"
)

// renderArtifacts generates every requested format from the styled render
// set. The DOT string is built once and shared by the SVG and PNG sinks.
func renderArtifacts(set vis.RenderSet, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	needDOT := false
	for _, f := range opts.Formats {
		if f == FormatSVG || f == FormatPNG {
			needDOT = true
		}
	}
	if needDOT {
		dot = vis.ToDOT(set)
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = vis.RenderHTML(set, vis.HTMLOptions{
				Title:   opts.Title,
				Physics: opts.Physics,
			})
		case FormatSVG:
			data, err = vis.RenderSVG(dot)
		case FormatPNG:
			data, err = vis.RenderPNG(dot)
		case FormatJSON:
			data, err = json.MarshalIndent(set, "", "  ")
		default:
			return nil, ValidateFormat(format)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
