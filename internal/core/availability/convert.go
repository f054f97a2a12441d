// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// # Raw Value Conversion
//
// Rows arrive either from pgx (native Go values and pgtype wrappers) or from
// spreadsheet imports (strings). Every converter maps NULL to nil and reports
// values it cannot interpret instead of guessing a zero.

// dateLayouts are the textual date formats accepted for date and timestamp columns.
var dateLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

func toText(value any) (*string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case []byte:
		s := string(v)
		return &s, nil
	case pgtype.Text:
		if !v.Valid {
			return nil, nil
		}
		return &v.String, nil
	case fmt.Stringer:
		s := v.String()
		return &s, nil
	case int, int32, int64, float64:
		s := fmt.Sprint(v)
		return &s, nil
	default:
		return nil, fmt.Errorf("unsupported text value of type %T", value)
	}
}

func toNumber(value any) (*float64, error) {
	var result float64

	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		result = v
	case float32:
		result = float64(v)
	case int:
		result = float64(v)
	case int16:
		result = float64(v)
	case int32:
		result = float64(v)
	case int64:
		result = float64(v)
	case pgtype.Numeric:
		if !v.Valid {
			return nil, nil
		}
		f, err := v.Float64Value()
		if err != nil {
			return nil, err
		}
		if !f.Valid {
			return nil, nil
		}
		result = f.Float64
	case pgtype.Float8:
		if !v.Valid {
			return nil, nil
		}
		result = v.Float64
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, err
		}
		result = f
	default:
		return nil, fmt.Errorf("unsupported numeric value of type %T", value)
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return nil, fmt.Errorf("non-finite numeric value %v", result)
	}
	return &result, nil
}

func toInteger(value any) (*int64, error) {
	var result int64

	switch v := value.(type) {
	case nil:
		return nil, nil
	case int:
		result = int64(v)
	case int16:
		result = int64(v)
	case int32:
		result = int64(v)
	case int64:
		result = v
	case pgtype.Int8:
		if !v.Valid {
			return nil, nil
		}
		result = v.Int64
	case pgtype.Int4:
		if !v.Valid {
			return nil, nil
		}
		result = int64(v.Int32)
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-integral value %v", v)
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return nil, fmt.Errorf("value %v out of integer range", v)
		}
		result = int64(v)
	case pgtype.Numeric:
		number, err := toNumber(v)
		if err != nil || number == nil {
			return nil, err
		}
		return toInteger(*number)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, err
		}
		result = n
	default:
		return nil, fmt.Errorf("unsupported integer value of type %T", value)
	}
	return &result, nil
}

func toTime(value any) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case pgtype.Date:
		if !v.Valid || v.InfinityModifier != pgtype.Finite {
			return nil, nil
		}
		return &v.Time, nil
	case pgtype.Timestamptz:
		if !v.Valid || v.InfinityModifier != pgtype.Finite {
			return nil, nil
		}
		return &v.Time, nil
	case pgtype.Timestamp:
		if !v.Valid || v.InfinityModifier != pgtype.Finite {
			return nil, nil
		}
		return &v.Time, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return &parsed, nil
			}
		}
		return nil, fmt.Errorf("unrecognized date %q", trimmed)
	default:
		return nil, fmt.Errorf("unsupported time value of type %T", value)
	}
}
