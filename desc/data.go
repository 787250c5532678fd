// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// dataObject has the same fields as Data, without its unmarshal methods.
type dataObject struct {
	Kind   string    `json:"kind" yaml:"kind"`
	Values []float32 `json:"values" yaml:"values"`
}

func (d *Data) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var tuple []json.RawMessage
		if err := json.Unmarshal(b, &tuple); err != nil {
			return err
		}
		if len(tuple) != 2 {
			return fmt.Errorf("desc: data tuple has %d elements, want 2", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &d.Kind); err != nil {
			return err
		}
		return json.Unmarshal(tuple[1], &d.Values)
	}
	var obj dataObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*d = Data(obj)
	return nil
}

func (d Data) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Kind, d.Values})
}

func (d *Data) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		if len(value.Content) != 2 {
			return fmt.Errorf("desc: line %d: data tuple has %d elements, want 2", value.Line, len(value.Content))
		}
		if err := value.Content[0].Decode(&d.Kind); err != nil {
			return err
		}
		return value.Content[1].Decode(&d.Values)
	}
	var obj dataObject
	if err := value.Decode(&obj); err != nil {
		return err
	}
	*d = Data(obj)
	return nil
}
