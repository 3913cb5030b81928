package transforms

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/alekLukanen/IcebergTransforms/icetypes"
	"github.com/alekLukanen/IcebergTransforms/typeOps"
)

/*
* Renders a partition value for display. Dispatch runs in two steps:
* first on the runtime kind of the value, then, for integer values,
* on the declared source type so that epoch encoded dates, times and
* timestamps render as ISO strings instead of raw counts.
 */
func humanString(source icetypes.Type, value any) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case []byte:
		return base64.StdEncoding.EncodeToString(v)
	case int32:
		return intHumanString(source, int64(v))
	case int64:
		return intHumanString(source, v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func intHumanString(source icetypes.Type, value int64) string {
	if source == nil {
		return strconv.FormatInt(value, 10)
	}

	switch source.Kind() {
	case icetypes.KindDate:
		return typeops.DayToHumanString(int32(value))
	case icetypes.KindTime:
		return typeops.MicrosToHumanTime(value)
	case icetypes.KindTimestamp:
		return typeops.MicrosToHumanTimestamp(value)
	case icetypes.KindTimestamptz:
		return typeops.MicrosToHumanTimestamptz(value)
	default:
		return strconv.FormatInt(value, 10)
	}
}
