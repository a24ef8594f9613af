package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/gc-segments/pkg/model"
	"github.com/mpapenbr/gc-segments/pkg/service"
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
// Values are converted via their JSON representation first, so nullable
// sensor values and time values look the same in both formats.
func YAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	plain(&doc)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// plain drops the flow and quoting styles the JSON input carries.
func plain(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plain(c)
	}
}

// Leaderboard writes lb in the requested format.
func Leaderboard(w io.Writer, f Format, lb *model.Leaderboard) error {
	switch f {
	case FormatText:
		return Text(w, lb)
	case FormatJSON:
		return JSON(w, lb)
	case FormatYAML:
		return YAML(w, lb)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Error writes err in the requested format. Errors other than
// *service.Failure are reported as load failures.
func Error(w io.Writer, f Format, err error) error {
	var failure *service.Failure
	if !errors.As(err, &failure) {
		failure = &service.Failure{
			Kind:    service.KindLoadFailure,
			Message: err.Error(),
			Err:     err,
		}
	}
	switch f {
	case FormatText:
		return TextFailure(w, failure)
	case FormatJSON:
		return JSON(w, failure)
	case FormatYAML:
		return YAML(w, failure)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
