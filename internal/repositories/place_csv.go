package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"yourmyth/internal/models/response_models"
)

const (
	colName      = "place_name"
	colAddress   = "place_address"
	colTags      = "has_type"
	colRating    = "rating"
	colLatitude  = "latitude"
	colLongitude = "longitude"
)

// LoadPlacesCSV reads the places dataset from disk.
func LoadPlacesCSV(path string, logger *zap.Logger) ([]response_models.Place, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open places csv: %w", err)
	}
	defer file.Close()

	return ReadPlacesCSV(file, logger)
}

// ReadPlacesCSV parses a places table. Columns are located by header name; rows with
// unparseable coordinates are skipped.
func ReadPlacesCSV(r io.Reader, logger *zap.Logger) ([]response_models.Place, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("places csv is empty")
		}
		return nil, fmt.Errorf("read places csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\uFEFF")
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colName, colAddress, colLatitude, colLongitude} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("places csv: missing column %q", required)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var places []response_models.Place
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read places csv line %d: %w", line, err)
		}

		lat, errLat := strconv.ParseFloat(field(record, colLatitude), 64)
		lng, errLng := strconv.ParseFloat(field(record, colLongitude), 64)
		if errLat != nil || errLng != nil {
			logger.Warn("skipping place with bad coordinates",
				zap.Int("line", line),
				zap.String("name", field(record, colName)))
			continue
		}

		places = append(places, response_models.Place{
			Name:      field(record, colName),
			Address:   field(record, colAddress),
			Tags:      SplitTags(field(record, colTags)),
			Rating:    parseRating(field(record, colRating)),
			Latitude:  lat,
			Longitude: lng,
		})
	}

	return places, nil
}

// SplitTags turns "museum, beach" into its labels, dropping blanks.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseRating(raw string) *float64 {
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
