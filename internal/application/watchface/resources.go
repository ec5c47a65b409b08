package watchface

import (
	"errors"
	"fmt"
	"os"

	"github.com/penwyp/go-utc-face/internal/core/face"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/util"
	"gopkg.in/yaml.v3"
)

// resourceFile is the YAML layout of a resources file. Every field is
// optional; absent fields keep the built-in value.
type resourceFile struct {
	Colors struct {
		Background  string `yaml:"background"`
		HourDefault string `yaml:"hour_default"`
		Hand        string `yaml:"hand"`
		CurrentHour string `yaml:"current_hour"`
		GMTHour     string `yaml:"gmt_hour"`
		UTCLabel    string `yaml:"utc_label"`
		Ambient     string `yaml:"ambient"`
	} `yaml:"colors"`
	Dimensions struct {
		HourTextSize         *float64 `yaml:"hour_text_size"`
		HourTextSizeRound    *float64 `yaml:"hour_text_size_round"`
		BigHourTextSize      *float64 `yaml:"big_hour_text_size"`
		BigHourTextSizeRound *float64 `yaml:"big_hour_text_size_round"`
		HandStrokeWidth      *float64 `yaml:"hand_stroke_width"`
		CurrentHourStroke    *float64 `yaml:"current_hour_stroke"`
	} `yaml:"dimensions"`
}

// LoadResources reads a resources file over the built-in defaults.
// An empty path or a missing file yields the defaults.
func LoadResources(path string) (face.Resources, error) {
	res := face.DefaultResources()
	if path == "" {
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			util.LogDebugf("Resources file %s not found, using defaults", path)
			return res, nil
		}
		return res, fmt.Errorf("failed to read resources file: %w", err)
	}

	var file resourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return res, fmt.Errorf("failed to parse resources file: %w", err)
	}

	colors := []struct {
		value string
		dst   *model.Color
	}{
		{file.Colors.Background, &res.Colors.Background},
		{file.Colors.HourDefault, &res.Colors.HourDefault},
		{file.Colors.Hand, &res.Colors.Hand},
		{file.Colors.CurrentHour, &res.Colors.CurrentHour},
		{file.Colors.GMTHour, &res.Colors.GMTHour},
		{file.Colors.UTCLabel, &res.Colors.UTCLabel},
		{file.Colors.Ambient, &res.Colors.Ambient},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := model.ParseHexColor(c.value)
		if err != nil {
			return res, fmt.Errorf("invalid resources file %s: %w", path, err)
		}
		*c.dst = parsed
	}

	dims := []struct {
		name  string
		value *float64
		dst   *float64
	}{
		{"hour_text_size", file.Dimensions.HourTextSize, &res.Dimensions.HourTextSize},
		{"hour_text_size_round", file.Dimensions.HourTextSizeRound, &res.Dimensions.HourTextSizeRound},
		{"big_hour_text_size", file.Dimensions.BigHourTextSize, &res.Dimensions.BigHourTextSize},
		{"big_hour_text_size_round", file.Dimensions.BigHourTextSizeRound, &res.Dimensions.BigHourTextSizeRound},
		{"hand_stroke_width", file.Dimensions.HandStrokeWidth, &res.Dimensions.HandStrokeWidth},
		{"current_hour_stroke", file.Dimensions.CurrentHourStroke, &res.Dimensions.CurrentHourStroke},
	}
	for _, d := range dims {
		if d.value == nil {
			continue
		}
		if *d.value <= 0 {
			return res, fmt.Errorf("invalid resources file %s: %s must be positive, got %v", path, d.name, *d.value)
		}
		*d.dst = *d.value
	}

	util.LogInfof("Loaded resources from %s", path)
	return res, nil
}
