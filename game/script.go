package game

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type scriptEvent struct {
	Action string `yaml:"action"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// LoadScript reads a YAML list of events, e.g.
//
//	- {action: reveal, x: 3, y: 4}
//	- {action: flag, x: 0, y: 0}
func LoadScript(in io.Reader) ([]Event, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading script")
	}

	var entries []scriptEvent
	if err := yaml.UnmarshalStrict(data, &entries); err != nil {
		return nil, errors.Wrap(err, "parsing script")
	}

	events := make([]Event, len(entries))
	for i, entry := range entries {
		action, err := ParseAction(entry.Action)
		if err != nil {
			return nil, errors.Wrapf(err, "script event %d", i)
		}
		events[i] = Event{Action: action, X: entry.X, Y: entry.Y}
	}
	return events, nil
}
