package panel

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is one metric point: field 0 is the timestamp, the rest are values
// whose meaning is fixed per endpoint.
type Row []interface{}

// Series is the rows of one metrics endpoint in backend order.
type Series []Row

type MetricsResp struct {
	Metrics Series `json:"metrics"`
}

// Stats is the flat aggregate snapshot of /admin/api/stats. Fields stay raw so
// absent, null, string and number values can be told apart.
type Stats struct {
	TotalUsers json.RawMessage `json:"total_users"`
	ActiveSubs json.RawMessage `json:"active_subs"`
	Income     *Income         `json:"income"`
}

type Income struct {
	Yookassa json.RawMessage `json:"yookassa"`
	Crypto   json.RawMessage `json:"crypto"`
}

// Total sums both payment channels, absent or invalid channels count as 0.
func (i *Income) Total() float64 {
	if i == nil {
		return 0
	}
	y, _ := RawNumber(i.Yookassa)
	c, _ := RawNumber(i.Crypto)
	return y + c
}

// Poll is the result of one complete cycle.
type Poll struct {
	System Series
	VPN    Series
	Stats  Stats
}

// AuditEntry is [timestamp, actor, action, detail?].
type AuditEntry []interface{}

type AuditResp struct {
	Logs []AuditEntry `json:"logs"`
}

func (e AuditEntry) Field(i int) string {
	if i >= len(e) || e[i] == nil {
		return ""
	}
	switch v := e[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	b, _ := json.Marshal(e[i])
	return string(b)
}

func (e AuditEntry) Time(loc *time.Location) (time.Time, bool) {
	if len(e) == 0 {
		return time.Time{}, false
	}
	return ParseTime(e[0], loc)
}

// Value returns field i as a number, 0 when absent or not numeric.
func (r Row) Value(i int) float64 {
	if i >= len(r) {
		return 0
	}
	v, _ := Number(r[i])
	return v
}

func (r Row) Time(loc *time.Location) (time.Time, bool) {
	if len(r) == 0 {
		return time.Time{}, false
	}
	return ParseTime(r[0], loc)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTime accepts epoch milliseconds or a timestamp string. Strings without
// a zone are read in loc.
func ParseTime(v interface{}, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	switch t := v.(type) {
	case float64:
		return time.UnixMilli(int64(t)).In(loc), true
	case string:
		for _, layout := range timeLayouts {
			if ts, err := time.ParseInLocation(layout, strings.TrimSpace(t), loc); err == nil {
				return ts.In(loc), true
			}
		}
	}
	return time.Time{}, false
}

// Number coerces a decoded JSON value. ok is false for null, absent,
// non-numeric and non-finite values, which read as 0.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	}
	return 0, false
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func RawNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return Number(v)
}

// RawText renders a raw scalar the way it should appear in a counter.
// ok is false when the field is absent or null.
func RawText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return string(raw), true
}
