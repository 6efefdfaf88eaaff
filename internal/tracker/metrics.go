package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Payload field names in an event's JSON data.
const (
	FieldBlockNumber = "blockNumber"
	FieldTPS         = "tps"
	FieldGPS         = "gps"
	FieldDPS         = "dps"
)

// ErrFieldMissing is reported when a payload lacks a metric field.
var ErrFieldMissing = errors.New("field missing")

// ParseObserver is told about every payload field that fell back to 0.
// It cannot change the outcome of a merge.
type ParseObserver interface {
	ParseFailure(network, field string, err error)
}

// ParseObserverFunc adapts a plain function to ParseObserver.
type ParseObserverFunc func(network, field string, err error)

// ParseFailure calls f.
func (f ParseObserverFunc) ParseFailure(network, field string, err error) {
	f(network, field, err)
}

// ParseMetrics decodes an event payload into Metrics. It never fails:
// a field that is missing or malformed is 0 and gets reported to observer,
// which may be nil. tps, gps and dps are normally numeric strings, but plain
// JSON numbers are accepted too. blockNumber may be either.
func ParseMetrics(network, raw string, observer ParseObserver) Metrics {
	var fields map[string]json.RawMessage
	decodeErr := json.Unmarshal([]byte(raw), &fields)

	value := func(field string) (json.RawMessage, error) {
		if decodeErr != nil {
			return nil, fmt.Errorf("decoding payload: %w", decodeErr)
		}
		v, ok := fields[field]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, ErrFieldMissing
		}
		return v, nil
	}

	report := func(field string, err error) {
		if observer != nil {
			observer.ParseFailure(network, field, err)
		}
	}

	var m Metrics

	if v, err := value(FieldBlockNumber); err != nil {
		report(FieldBlockNumber, err)
	} else if n, err := parseUint(v); err != nil {
		report(FieldBlockNumber, err)
	} else {
		m.BlockNumber = n
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{FieldTPS, &m.TPS},
		{FieldGPS, &m.GPS},
		{FieldDPS, &m.DPS},
	} {
		v, err := value(f.name)
		if err != nil {
			report(f.name, err)
			continue
		}
		n, err := parseFloat(v)
		if err != nil {
			report(f.name, err)
			continue
		}
		*f.dst = n
	}

	return m
}

// scalarText returns the text of a JSON string, or the raw token otherwise.
func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(raw), nil
}

func parseFloat(raw json.RawMessage) (float64, error) {
	text, err := scalarText(raw)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	// NaN would break the descending order.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %q", text)
	}
	return f, nil
}

func parseUint(raw json.RawMessage) (uint64, error) {
	text, err := scalarText(raw)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(text, 10, 64)
}
