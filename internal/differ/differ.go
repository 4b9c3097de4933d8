// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfrun/tfrun/internal/log"
)

// Diff compares two JSON documents (typically the variable sets of two
// environments) and writes an ascii-formatted delta to w. Returns true when
// the documents differ.
func Diff(left, right []byte, w io.Writer, coloring bool) (bool, error) {
	log.Debugf("diffing documents: left=%dB right=%dB", len(left), len(right))

	if len(left) == 0 || len(right) == 0 {
		return false, nil
	}

	differ := gojsondiff.New()

	delta, err := differ.Compare(left, right)
	if err != nil {
		return false, fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return false, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	formatter := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := formatter.Format(delta)
	if err != nil {
		return false, err
	}

	fmt.Fprintln(w, diffString)
	return true, nil
}
