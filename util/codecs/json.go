// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

// Package codecs holds the JSON file helpers used for configuration.
package codecs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/algorand/go-lists/serr"
)

// NewFormattedJSONEncoder returns a json encoder configured for
// pretty-printed output (human-readable)
func NewFormattedJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc
}

// LoadObjectFromFile decodes the json in filename into object.
func LoadObjectFromFile(filename string, object interface{}) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(object)
}

func encodeTo(w io.Writer, object interface{}, prettyFormat bool) error {
	var enc *json.Encoder
	if prettyFormat {
		enc = NewFormattedJSONEncoder(w)
	} else {
		enc = json.NewEncoder(w)
	}
	return enc.Encode(object)
}

// SaveNonDefaultValuesToFile saves a flat struct to a file as json, keeping
// only the fields whose value differs from defaultObject plus the fields
// named in ignore.
func SaveNonDefaultValuesToFile(filename string, object, defaultObject interface{}, ignore []string, prettyFormat bool) error {
	// Encode pretty-formatted so there is one value per line, then filter lines.
	var encoded strings.Builder
	if err := encodeTo(&encoded, object, true); err != nil {
		return err
	}

	objectValues := createValueMap(object)
	defaultValues := createValueMap(defaultObject)

	var kept []string
	inContent := false
	for _, line := range strings.Split(encoded.String(), "\n") {
		if line == "" {
			continue
		}
		valName := extractValueName(line)
		if valName == "" {
			if !inContent && !strings.Contains(line, "{") || inContent && !strings.Contains(line, "}") {
				return serr.New("nested types are not supported", "line", line)
			}
			inContent = !inContent
			kept = append(kept, line)
			continue
		}
		if !inContent {
			return serr.New("value after end of object", "line", line)
		}
		if !slices.Contains(ignore, valName) && isDefaultValue(valName, objectValues, defaultValues) {
			continue
		}
		kept = append(kept, line)
	}

	// Ensure last value line doesn't end in comma
	if n := len(kept); n > 2 {
		kept[n-2] = strings.TrimSuffix(kept[n-2], ",")
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()
	writer := bufio.NewWriter(outFile)
	if _, err = writer.WriteString(strings.Join(kept, "\n")); err != nil {
		return err
	}
	return writer.Flush()
}

func extractValueName(line string) (name string) {
	start := strings.Index(line, "\"")
	if start < 0 {
		return
	}
	end := strings.Index(line, "\":")
	if end < 0 || end <= start {
		return
	}
	return line[start+1 : end]
}

func createValueMap(object interface{}) map[string]interface{} {
	valueMap := make(map[string]interface{})

	val := reflect.Indirect(reflect.ValueOf(object))
	for i := 0; i < val.NumField(); i++ {
		valueMap[val.Type().Field(i).Name] = val.Field(i).Interface()
	}
	return valueMap
}

func isDefaultValue(name string, values, defaults map[string]interface{}) bool {
	val, hasVal := values[name]
	def, hasDef := defaults[name]
	if hasVal != hasDef {
		return false
	}
	return reflect.DeepEqual(val, def)
}
